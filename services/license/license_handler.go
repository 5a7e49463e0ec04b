package licenseservice

import (
	"net/http"
	"strconv"
	"strings"

	"assetflow/apperror"
	"assetflow/providers"
	"assetflow/utils"
)

type LicenseHandler struct {
	Service        LicenseService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewLicenseHandler(service LicenseService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *LicenseHandler {
	return &LicenseHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func parseLicenseFilter(r *http.Request) (LicenseFilter, error) {
	q := r.URL.Query()
	filter := LicenseFilter{
		Status:       strings.TrimSpace(q.Get("status")),
		SoftwareName: strings.TrimSpace(q.Get("software_name")),
	}
	assetID, err := utils.QueryInt64(r, "asset_id")
	if err != nil {
		return LicenseFilter{}, err
	}
	filter.AssetID = assetID
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)
	return filter, nil
}

func (h *LicenseHandler) ListLicenses(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	filter, err := parseLicenseFilter(r)
	if err != nil {
		utils.RespondAppError(w, err, "invalid filter")
		return
	}
	licenses, err := h.Service.ListLicenses(r.Context(), actor, filter)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch licenses")
		return
	}
	utils.RespondJSON(w, http.StatusOK, licenses)
}

func (h *LicenseHandler) CreateLicense(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req CreateLicenseReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	license, err := h.Service.CreateLicense(r.Context(), actor, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to create license")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"message": "License created successfully", "license": license})
}

func (h *LicenseHandler) GetLicense(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid license id")
		return
	}
	license, err := h.Service.GetLicense(r.Context(), actor, id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch license")
		return
	}
	utils.RespondJSON(w, http.StatusOK, license)
}

func (h *LicenseHandler) UpdateLicense(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid license id")
		return
	}
	var req UpdateLicenseReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	license, err := h.Service.UpdateLicense(r.Context(), actor, id, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to update license")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "License updated successfully", "license": license})
}

func (h *LicenseHandler) DeleteLicense(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid license id")
		return
	}
	if err := h.Service.DeleteLicense(r.Context(), actor, id); err != nil {
		utils.RespondAppError(w, err, "failed to delete license")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "License deleted successfully"})
}

// ExpiringLicenses lists active licenses expiring within ?days= (default 30).
func (h *LicenseHandler) ExpiringLicenses(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	days := defaultExpiryWindow
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			utils.RespondAppError(w, apperror.NewFieldValidation("invalid days", map[string]string{"days": "must be an integer"}), "invalid days")
			return
		}
	}
	licenses, err := h.Service.ExpiringLicenses(r.Context(), actor, days)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch expiring licenses")
		return
	}
	utils.RespondJSON(w, http.StatusOK, licenses)
}
