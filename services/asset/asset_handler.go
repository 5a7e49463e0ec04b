package assetservice

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/providers"
	"assetflow/utils"
)

type AssetHandler struct {
	Service        AssetService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewAssetHandler(service AssetService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *AssetHandler {
	return &AssetHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

// parseAssetFilter reads the list and export query parameters.
func parseAssetFilter(r *http.Request) (AssetFilter, error) {
	q := r.URL.Query()
	filter := AssetFilter{
		Category:            q.Get("category"),
		Department:          q.Get("department"),
		Search:              strings.TrimSpace(q.Get("search")),
		IncludeDepreciation: strings.EqualFold(q.Get("include_depreciation"), "true"),
	}
	for _, raw := range q["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, s)
			}
		}
	}

	assignedTo, err := utils.QueryInt64(r, "assigned_to")
	if err != nil {
		return AssetFilter{}, err
	}
	filter.AssignedTo = assignedTo

	for name, dst := range map[string]**time.Time{
		"purchase_date_from": &filter.PurchaseDateFrom,
		"purchase_date_to":   &filter.PurchaseDateTo,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return AssetFilter{}, apperror.NewFieldValidation("invalid "+name, map[string]string{name: "must be YYYY-MM-DD"})
		}
		*dst = &t
	}

	if raw := q.Get("warranty_expiring_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return AssetFilter{}, apperror.NewFieldValidation("invalid warranty_expiring_days",
				map[string]string{"warranty_expiring_days": "must be a non-negative integer"})
		}
		filter.WarrantyExpiringDays = &days
	}

	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)
	return filter, nil
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	filter, err := parseAssetFilter(r)
	if err != nil {
		utils.RespondAppError(w, err, "invalid filter")
		return
	}
	assets, err := h.Service.ListAssets(r.Context(), actor, filter)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	asset, err := h.Service.CreateAsset(r.Context(), actor, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to create asset")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"message": "Asset created successfully", "asset": asset})
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	include := strings.EqualFold(r.URL.Query().Get("include_depreciation"), "true")
	asset, err := h.Service.GetAsset(r.Context(), actor, id, include)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	var req UpdateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	asset, err := h.Service.UpdateAsset(r.Context(), actor, id, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to update asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Asset updated successfully", "asset": asset})
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	if err := h.Service.DeleteAsset(r.Context(), actor, id); err != nil {
		utils.RespondAppError(w, err, "failed to delete asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}

func (h *AssetHandler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	var req AssignAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	asset, err := h.Service.AssignAsset(r.Context(), actor, id, req.UserID)
	if err != nil {
		utils.RespondAppError(w, err, "failed to assign asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Asset assigned successfully", "asset": asset})
}

func (h *AssetHandler) ReleaseAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	asset, err := h.Service.ReleaseAsset(r.Context(), actor, id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to release asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Asset released successfully", "asset": asset})
}

func (h *AssetHandler) RetireAsset(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	asset, err := h.Service.RetireAsset(r.Context(), actor, id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to retire asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Asset retired successfully", "asset": asset})
}

func (h *AssetHandler) SetAssetStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	var req SetStatusReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	asset, err := h.Service.SetAssetStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		utils.RespondAppError(w, err, "failed to change asset status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Asset status updated", "asset": asset})
}

func (h *AssetHandler) GetAssetHistory(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	history, err := h.Service.GetAssetHistory(r.Context(), actor, id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch asset history")
		return
	}
	utils.RespondJSON(w, http.StatusOK, history)
}

func (h *AssetHandler) GetDepreciation(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid asset id")
		return
	}
	depreciation, err := h.Service.GetDepreciation(r.Context(), actor, id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to calculate depreciation")
		return
	}
	utils.RespondJSON(w, http.StatusOK, depreciation)
}

func (h *AssetHandler) ExportAssets(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	filter, err := parseAssetFilter(r)
	if err != nil {
		utils.RespondAppError(w, err, "invalid filter")
		return
	}
	body, err := h.Service.ExportAssetsCSV(r.Context(), actor, filter)
	if err != nil {
		utils.RespondAppError(w, err, "failed to export assets")
		return
	}
	filename := fmt.Sprintf("assets_export_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *AssetHandler) ListUserAssets(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	userID, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid user id")
		return
	}
	assets, err := h.Service.ListUserAssets(r.Context(), actor, userID)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch user assets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, assets)
}
