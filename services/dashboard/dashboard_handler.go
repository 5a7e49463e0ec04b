package dashboardservice

import (
	"net/http"
	"strconv"

	"assetflow/apperror"
	"assetflow/providers"
	"assetflow/utils"
)

type DashboardHandler struct {
	Service        DashboardService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewDashboardHandler(service DashboardService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *DashboardHandler {
	return &DashboardHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewFieldValidation("invalid "+name, map[string]string{name: "must be an integer"})
	}
	return v, nil
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	stats, err := h.Service.GetStats(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to load dashboard stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) AssetsByCategory(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	groups, err := h.Service.AssetsByCategory(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to count assets by category")
		return
	}
	utils.RespondJSON(w, http.StatusOK, groups)
}

func (h *DashboardHandler) AssetsByDepartment(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	groups, err := h.Service.AssetsByDepartment(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to count assets by department")
		return
	}
	utils.RespondJSON(w, http.StatusOK, groups)
}

func (h *DashboardHandler) AssetsByStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	groups, err := h.Service.AssetsByStatus(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to count assets by status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, groups)
}

func (h *DashboardHandler) WarrantyExpiring(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	days, err := queryInt(r, "days")
	if err != nil {
		utils.RespondAppError(w, err, "invalid days")
		return
	}
	assets, err := h.Service.WarrantyExpiring(r.Context(), actor, days)
	if err != nil {
		utils.RespondAppError(w, err, "failed to list expiring warranties")
		return
	}
	utils.RespondJSON(w, http.StatusOK, assets)
}

func (h *DashboardHandler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondAppError(w, err, "invalid limit")
		return
	}
	activities, err := h.Service.RecentActivities(r.Context(), actor, limit)
	if err != nil {
		utils.RespondAppError(w, err, "failed to list recent activities")
		return
	}
	utils.RespondJSON(w, http.StatusOK, activities)
}

func (h *DashboardHandler) MaintenanceStats(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	stats, err := h.Service.MaintenanceStats(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to load maintenance stats")
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) AssetValueSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	summary, err := h.Service.AssetValueSummary(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to summarize asset value")
		return
	}
	utils.RespondJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) AssetsTimeline(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	timeline, err := h.Service.AssetsTimeline(r.Context(), actor)
	if err != nil {
		utils.RespondAppError(w, err, "failed to load assets timeline")
		return
	}
	utils.RespondJSON(w, http.StatusOK, timeline)
}
