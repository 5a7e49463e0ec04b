package maintenanceservice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/providers"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestHandler(ctrl *gomock.Controller) (*TicketHandler, *MockTicketService, *providers.MockAuthMiddlewareService) {
	mockService := NewMockTicketService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return NewTicketHandler(mockService, mockAuth, mockLogger, 1024), mockService, mockAuth
}

func TestParseTicketFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/maintenance/?status=New&priority=High&asset_id=5&assigned_to=2&limit=10&page=2", nil)
	filter, err := parseTicketFilter(req)
	require.NoError(t, err)
	assert.Equal(t, "New", filter.Status)
	assert.Equal(t, "High", filter.Priority)
	assert.Equal(t, int64Ptr(5), filter.AssetID)
	assert.Equal(t, int64Ptr(2), filter.AssignedTo)
	assert.Nil(t, filter.ReportedBy)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 10, filter.Offset)

	_, err = parseTicketFilter(httptest.NewRequest(http.MethodGet, "/maintenance/?asset_id=abc", nil))
	assert.Error(t, err)
}

func TestSetTicketStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler, mockService, mockAuth := newTestHandler(ctrl)
	manager := models.Identity{ID: 2, Role: models.AssetManagerRole, IsActive: true}

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		mockServiceErr     error
		expectedStatusCode int
	}{
		{name: "success", body: `{"status":"Resolved"}`, expectServiceCall: true, expectedStatusCode: http.StatusOK},
		{name: "missing status", body: `{}`, expectedStatusCode: http.StatusBadRequest},
		{name: "not found", body: `{"status":"Resolved"}`, expectServiceCall: true,
			mockServiceErr: apperror.NewNotFound("ticket"), expectedStatusCode: http.StatusNotFound},
		{name: "forbidden", body: `{"status":"Resolved"}`, expectServiceCall: true,
			mockServiceErr: apperror.NewAuth(apperror.Forbidden, "Employee may not ticket.status"), expectedStatusCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodPatch, "/maintenance/3/status", bytes.NewBufferString(tc.body)), "id", "3")
			rec := httptest.NewRecorder()

			mockAuth.EXPECT().GetIdentityFromContext(gomock.Any()).Return(manager, nil)
			if tc.expectServiceCall {
				mockService.EXPECT().SetTicketStatus(gomock.Any(), manager, int64(3), models.TicketResolved).
					Return(models.MaintenanceTicket{ID: 3, Status: models.TicketResolved}, tc.mockServiceErr)
			}

			handler.SetTicketStatus(rec, req)
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadAttachmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler, mockService, mockAuth := newTestHandler(ctrl)
	employee := models.Identity{ID: 4, Role: models.EmployeeRole, IsActive: true}

	t.Run("success", func(t *testing.T) {
		body, contentType := multipartBody(t, "file", "photo.png", pngHeader)
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/maintenance/3/upload", body), "id", "3")
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		mockAuth.EXPECT().GetIdentityFromContext(gomock.Any()).Return(employee, nil)
		mockService.EXPECT().UploadAttachment(gomock.Any(), employee, int64(3), "photo.png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.Identity, _ int64, _ string, r io.Reader) (string, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, pngHeader, data)
				return "/uploads/ticket_3_x_photo.png", nil
			})

		handler.UploadAttachment(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var res UploadRes
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "/uploads/ticket_3_x_photo.png", res.FileURL)
	})

	t.Run("missing file field", func(t *testing.T) {
		body, contentType := multipartBody(t, "other", "photo.png", pngHeader)
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/maintenance/3/upload", body), "id", "3")
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		mockAuth.EXPECT().GetIdentityFromContext(gomock.Any()).Return(employee, nil)

		handler.UploadAttachment(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteTicketHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler, mockService, mockAuth := newTestHandler(ctrl)
	admin := models.Identity{ID: 1, Role: models.AdminRole, IsActive: true}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/maintenance/3", nil), "id", "3")
	rec := httptest.NewRecorder()
	mockAuth.EXPECT().GetIdentityFromContext(gomock.Any()).Return(admin, nil)
	mockService.EXPECT().DeleteTicket(gomock.Any(), admin, int64(3)).Return(nil)

	handler.DeleteTicket(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ticket deleted successfully")
}
