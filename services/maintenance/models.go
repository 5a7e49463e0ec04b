package maintenanceservice

import "assetflow/models"

type CreateTicketReq struct {
	AssetID     int64                 `json:"asset_id" validate:"required,gt=0"`
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"required"`
	Priority    models.TicketPriority `json:"priority,omitempty"`
}

type UpdateTicketReq struct {
	Title           *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string                `json:"description,omitempty" validate:"omitempty,min=1"`
	Priority        *models.TicketPriority `json:"priority,omitempty"`
	ResolutionNotes *string                `json:"resolution_notes,omitempty"`
}

type TicketStatusReq struct {
	Status models.TicketStatus `json:"status" validate:"required"`
}

type AssignTicketReq struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type TicketFilter struct {
	Status     string
	Priority   string
	AssetID    *int64
	ReportedBy *int64
	AssignedTo *int64
	Limit      int
	Offset     int
}

// TicketResponse is a ticket with the names a list view shows next to it.
type TicketResponse struct {
	models.MaintenanceTicket
	AssetName        *string `json:"asset_name" db:"asset_name"`
	ReporterUsername *string `json:"reporter_username" db:"reporter_username"`
	AssigneeUsername *string `json:"assignee_username" db:"assignee_username"`
}

type UploadRes struct {
	Message string `json:"message"`
	FileURL string `json:"file_url"`
}
