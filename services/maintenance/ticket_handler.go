package maintenanceservice

import (
	"errors"
	"net/http"

	"assetflow/providers"
	"assetflow/utils"
)

// multipart overhead allowed on top of the file itself
const formOverheadBytes = 1 << 20

type TicketHandler struct {
	Service        TicketService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
	MaxUploadBytes int64
}

func NewTicketHandler(service TicketService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider, maxUploadBytes int64) *TicketHandler {
	return &TicketHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
		MaxUploadBytes: maxUploadBytes,
	}
}

func parseTicketFilter(r *http.Request) (TicketFilter, error) {
	filter := TicketFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}
	var err error
	if filter.AssetID, err = utils.QueryInt64(r, "asset_id"); err != nil {
		return TicketFilter{}, err
	}
	if filter.ReportedBy, err = utils.QueryInt64(r, "reported_by"); err != nil {
		return TicketFilter{}, err
	}
	if filter.AssignedTo, err = utils.QueryInt64(r, "assigned_to"); err != nil {
		return TicketFilter{}, err
	}
	filter.Limit, filter.Offset = utils.GetPageLimitAndOffset(r)
	return filter, nil
}

func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	filter, err := parseTicketFilter(r)
	if err != nil {
		utils.RespondAppError(w, err, "invalid filter")
		return
	}
	tickets, err := h.Service.ListTickets(r.Context(), actor, filter)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch tickets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	var req CreateTicketReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	ticket, err := h.Service.CreateTicket(r.Context(), actor, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to create ticket")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"message": "Maintenance ticket created successfully", "ticket": ticket})
}

func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid ticket id")
		return
	}
	ticket, err := h.Service.GetTicket(r.Context(), actor, id)
	if err != nil {
		utils.RespondAppError(w, err, "failed to fetch ticket")
		return
	}
	utils.RespondJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid ticket id")
		return
	}
	var req UpdateTicketReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	ticket, err := h.Service.UpdateTicket(r.Context(), actor, id, req)
	if err != nil {
		utils.RespondAppError(w, err, "failed to update ticket")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Ticket updated successfully", "ticket": ticket})
}

func (h *TicketHandler) SetTicketStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid ticket id")
		return
	}
	var req TicketStatusReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	ticket, err := h.Service.SetTicketStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		utils.RespondAppError(w, err, "failed to update ticket status")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Ticket status updated to " + string(ticket.Status), "ticket": ticket})
}

func (h *TicketHandler) AssignTicket(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid ticket id")
		return
	}
	var req AssignTicketReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondAppError(w, err, "invalid input")
		return
	}
	ticket, err := h.Service.AssignTicket(r.Context(), actor, id, req.UserID)
	if err != nil {
		utils.RespondAppError(w, err, "failed to assign ticket")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"message": "Ticket assigned successfully", "ticket": ticket})
}

func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid ticket id")
		return
	}
	if err := h.Service.DeleteTicket(r.Context(), actor, id); err != nil {
		utils.RespondAppError(w, err, "failed to delete ticket")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Ticket deleted successfully"})
}

func (h *TicketHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	actor, err := h.AuthMiddleware.GetIdentityFromContext(r)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondAppError(w, err, "invalid ticket id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes+formOverheadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondError(w, http.StatusRequestEntityTooLarge, err, "File too large")
			return
		}
		utils.RespondError(w, http.StatusBadRequest, err, "No file provided")
		return
	}
	defer file.Close()

	url, err := h.Service.UploadAttachment(r.Context(), actor, id, header.Filename, file)
	if err != nil {
		utils.RespondAppError(w, err, "failed to upload attachment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, UploadRes{Message: "File uploaded successfully", FileURL: url})
}
