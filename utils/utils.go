package utils

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"assetflow/apperror"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Reason string            `json:"reason,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return apperror.NewFieldValidation("invalid request body: "+err.Error(), nil)
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := jsoniter.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil && statusCode >= http.StatusInternalServerError {
		zap.L().Error(message, zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondAppError writes a typed error with the status it maps to. Internal
// errors are logged and replaced with a generic message.
func RespondAppError(w http.ResponseWriter, err error, fallback string) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		RespondError(w, status, err, fallback)
		return
	}
	resp := ErrorResponse{Error: err.Error(), Reason: apperror.ReasonOf(err)}
	var vErr *apperror.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		resp.Errors = vErr.Fields
	}
	RespondJSON(w, status, resp)
}

// ValidateStruct runs the struct tags and reports every failing field.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewFieldValidation(err.Error(), nil)
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describe(fe)
	}
	return apperror.NewFieldValidation("validation failed", fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func GetPageLimitAndOffset(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset >= 0 {
		return limit, offset
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// IDParam reads a positive integer route parameter.
func IDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewFieldValidation("invalid "+name, map[string]string{name: "must be a positive integer"})
	}
	return id, nil
}

// QueryInt64 reads an optional integer query parameter.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.NewFieldValidation("invalid "+name, map[string]string{name: "must be an integer"})
	}
	return &v, nil
}
