package userservice

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/providers"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestHandler(ctrl *gomock.Controller) (*UserHandler, *MockUserService, *providers.MockAuthMiddlewareService) {
	mockService := NewMockUserService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	return &UserHandler{
		Service:        mockService,
		AuthMiddleware: mockAuth,
		Logger:         mockLogger,
	}, mockService, mockAuth
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockService, _ := newTestHandler(ctrl)

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		mockServiceReturn  LoginRes
		mockServiceErr     error
		expectedStatusCode int
	}{
		{
			name:               "success",
			body:               `{"username":"alice","password":"secret1"}`,
			expectServiceCall:  true,
			mockServiceReturn:  LoginRes{AccessToken: "a", RefreshToken: "r", User: models.Identity{ID: 1, Username: "alice"}},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "malformed body",
			body:               `{"username":`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown field",
			body:               `{"username":"alice","password":"x","role":"Admin"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing password",
			body:               `{"username":"alice"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "bad credentials",
			body:               `{"username":"alice","password":"wrong"}`,
			expectServiceCall:  true,
			mockServiceErr:     apperror.NewAuth(apperror.InvalidCredentials, "Invalid credentials"),
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "inactive account",
			body:               `{"username":"alice","password":"secret1"}`,
			expectServiceCall:  true,
			mockServiceErr:     apperror.NewAuth(apperror.InactiveAccount, "Account is inactive"),
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "internal error",
			body:               `{"username":"alice","password":"secret1"}`,
			expectServiceCall:  true,
			mockServiceErr:     errors.New("db down"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tc.body))
			respRecorder := httptest.NewRecorder()

			if tc.expectServiceCall {
				mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tc.mockServiceReturn, tc.mockServiceErr)
			}

			handler.Login(respRecorder, req)
			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)

			if tc.expectedStatusCode == http.StatusOK {
				var res LoginRes
				assert.NoError(t, jsoniter.NewDecoder(respRecorder.Body).Decode(&res))
				assert.Equal(t, "a", res.AccessToken)
				assert.NotContains(t, respRecorder.Body.String(), "password")
			}
		})
	}
}

func TestRegisterHandlerReportsFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(`{"username":"al","email":"nope","password":"123"}`))
	respRecorder := httptest.NewRecorder()
	handler.Register(respRecorder, req)

	assert.Equal(t, http.StatusBadRequest, respRecorder.Code)
	var res struct {
		Errors map[string]string `json:"errors"`
	}
	assert.NoError(t, jsoniter.NewDecoder(respRecorder.Body).Decode(&res))
	assert.Contains(t, res.Errors, "username")
	assert.Contains(t, res.Errors, "email")
	assert.Contains(t, res.Errors, "password")
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _, mockAuth := newTestHandler(ctrl)

	t.Run("returns identity without hash", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		respRecorder := httptest.NewRecorder()
		mockAuth.EXPECT().GetIdentityFromContext(req).
			Return(models.Identity{ID: 2, Username: "bob", Role: models.HRRole, PasswordHash: "secret-hash", IsActive: true}, nil)

		handler.Me(respRecorder, req)
		assert.Equal(t, http.StatusOK, respRecorder.Code)
		assert.Contains(t, respRecorder.Body.String(), `"username":"bob"`)
		assert.NotContains(t, respRecorder.Body.String(), "secret-hash")
	})

	t.Run("unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		respRecorder := httptest.NewRecorder()
		mockAuth.EXPECT().GetIdentityFromContext(req).Return(models.Identity{}, errors.New("unauthorized"))

		handler.Me(respRecorder, req)
		assert.Equal(t, http.StatusUnauthorized, respRecorder.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockService, mockAuth := newTestHandler(ctrl)
	admin := models.Identity{ID: 1, Role: models.AdminRole, IsActive: true}

	testCases := []struct {
		name               string
		idParam            string
		expectServiceCall  bool
		mockServiceErr     error
		expectedStatusCode int
	}{
		{name: "success", idParam: "5", expectServiceCall: true, expectedStatusCode: http.StatusOK},
		{name: "bad id", idParam: "abc", expectedStatusCode: http.StatusBadRequest},
		{name: "not found", idParam: "5", expectServiceCall: true, mockServiceErr: apperror.NewNotFound("user"), expectedStatusCode: http.StatusNotFound},
		{name: "in use", idParam: "5", expectServiceCall: true, mockServiceErr: apperror.NewConflict(apperror.InUse, "in use"), expectedStatusCode: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+tc.idParam, nil), "id", tc.idParam)
			respRecorder := httptest.NewRecorder()

			mockAuth.EXPECT().GetIdentityFromContext(gomock.Any()).Return(admin, nil)
			if tc.expectServiceCall {
				mockService.EXPECT().DeleteUser(gomock.Any(), admin, int64(5)).Return(tc.mockServiceErr)
			}

			handler.DeleteUser(respRecorder, req)
			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)
		})
	}
}

func TestListUsersHandlerParsesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockService, _ := newTestHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/?role=HR&is_active=false&search=ann&limit=10&page=3", nil)
	respRecorder := httptest.NewRecorder()

	mockService.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f UserFilter) ([]models.Identity, error) {
			assert.Equal(t, "HR", f.Role)
			assert.Equal(t, "ann", f.Search)
			if assert.NotNil(t, f.IsActive) {
				assert.False(t, *f.IsActive)
			}
			assert.Equal(t, 10, f.Limit)
			assert.Equal(t, 20, f.Offset)
			return []models.Identity{{ID: 8, Username: "ann"}}, nil
		})

	handler.ListUsers(respRecorder, req)
	assert.Equal(t, http.StatusOK, respRecorder.Code)
	assert.Contains(t, respRecorder.Body.String(), `"ann"`)
}
