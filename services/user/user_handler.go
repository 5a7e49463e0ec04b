package userservice

import (
	"net/http"

	"assetflow/providers"
	"assetflow/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	Service        UserService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewUserHandler(service UserService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *UserHandler {
	return &UserHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}

	user, err := h.Service.Register(r.Context(), req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to register user")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"message": "User registered successfully", "user": user})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}

	res, err := h.Service.Login(r.Context(), req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to login")
		return
	}
	h.Logger.GetLogger().Info("user logged in", zap.Int64("user_id", res.User.ID))
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}

	accessToken, err := h.Service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		utils.RespondAppError(w, err, "failed to refresh token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, RefreshRes{AccessToken: accessToken})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	utils.RespondJSON(w, http.StatusOK, identity)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req UpdateProfileReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), identity.ID, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to update profile")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req ChangePasswordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}

	if err := h.Service.ChangePassword(r.Context(), identity.ID, req); err != nil {
		utils.RespondAppError(w, err, "failed to change password")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := UserFilter{
		Role:       r.URL.Query().Get("role"),
		Department: r.URL.Query().Get("department"),
		Search:     r.URL.Query().Get("search"),
	}
	switch r.URL.Query().Get("is_active") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)

	users, err := h.Service.ListUsers(r.Context(), filter)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid user id")
		return
	}
	user, err := h.Service.GetUser(r.Context(), id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid user id")
		return
	}
	var req UpdateUserReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), actor, id, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to update user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid user id")
		return
	}
	if err := h.Service.DeleteUser(r.Context(), actor, id); err != nil {
		utils.RespondAppError(w, err, "failed to delete user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
