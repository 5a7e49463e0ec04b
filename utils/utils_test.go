package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"assetflow/apperror"
	"assetflow/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPageLimitAndOffset(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{query: "", wantLimit: 50, wantOffset: 0},
		{query: "?limit=10&page=3", wantLimit: 10, wantOffset: 20},
		{query: "?limit=10&offset=5", wantLimit: 10, wantOffset: 5},
		{query: "?limit=1000", wantLimit: 200, wantOffset: 0},
		{query: "?limit=-1&page=0", wantLimit: 50, wantOffset: 0},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/assets/"+tc.query, nil)
		limit, offset := GetPageLimitAndOffset(req)
		assert.Equal(t, tc.wantLimit, limit, tc.query)
		assert.Equal(t, tc.wantOffset, offset, tc.query)
	}
}

func TestValidateStruct(t *testing.T) {
	type req struct {
		UserID   int64  `json:"user_id" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"min=6"`
	}

	err := ValidateStruct(req{Email: "nope", Password: "123"})
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["user_id"])
	assert.Equal(t, "must be a valid email", vErr.Fields["email"])
	assert.Equal(t, "must be at least 6", vErr.Fields["password"])

	assert.NoError(t, ValidateStruct(req{UserID: 1, Email: "a@b.io", Password: "secret"}))
}

func TestRespondAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondAppError(rec, apperror.NewFieldValidation("validation failed", map[string]string{"name": "is required"}), "x")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, "is required", body.Errors["name"])
	assert.Equal(t, "InvalidField", body.Reason)

	rec = httptest.NewRecorder()
	RespondAppError(rec, apperror.NewConflict(apperror.AlreadyAssigned, "asset is already assigned"), "x")
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "AlreadyAssigned", body.Reason)

	rec = httptest.NewRecorder()
	RespondAppError(rec, assert.AnError, "failed to load asset")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to load asset")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestParseJSONBodyRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	err := ParseJSONBody(req, &dst)
	assert.True(t, apperror.IsValidation(err, apperror.InvalidField))
}

func TestAssetValidityCheck(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)
	earlier := past.Add(-24 * time.Hour)
	negative := -5.0

	assert.NoError(t, AssetValidityCheck(&past, &future, nil, models.ConditionGood))

	err := AssetValidityCheck(&future, &earlier, &negative, "Broken")
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 4)
}

func TestIsAllowedAttachment(t *testing.T) {
	allowed := []string{"png", "pdf"}
	assert.True(t, IsAllowedAttachment("scan.PDF", allowed))
	assert.False(t, IsAllowedAttachment("run.exe", allowed))
	assert.False(t, IsAllowedAttachment("noext", allowed))
	assert.False(t, IsAllowedAttachment("dot.", allowed))
}
