package models

import "time"

type TicketStatus string

const (
	TicketNew         TicketStatus = "New"
	TicketUnderReview TicketStatus = "Under Review"
	TicketInProgress  TicketStatus = "In Progress"
	TicketResolved    TicketStatus = "Resolved"
	TicketClosed      TicketStatus = "Closed"
)

var TicketStatuses = []TicketStatus{TicketNew, TicketUnderReview, TicketInProgress, TicketResolved, TicketClosed}

func (s TicketStatus) IsValid() bool {
	for _, status := range TicketStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status carries a resolution timestamp.
func (s TicketStatus) IsTerminal() bool {
	return s == TicketResolved || s == TicketClosed
}

type TicketPriority string

const (
	PriorityLow      TicketPriority = "Low"
	PriorityMedium   TicketPriority = "Medium"
	PriorityHigh     TicketPriority = "High"
	PriorityCritical TicketPriority = "Critical"
)

var TicketPriorities = []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p TicketPriority) IsValid() bool {
	for _, priority := range TicketPriorities {
		if p == priority {
			return true
		}
	}
	return false
}

type MaintenanceTicket struct {
	ID               int64          `json:"id" db:"id"`
	AssetID          int64          `json:"asset_id" db:"asset_id"`
	ReportedByUserID int64          `json:"reported_by_user_id" db:"reported_by_user_id"`
	AssignedToUserID *int64         `json:"assigned_to_user_id" db:"assigned_to_user_id"`
	Title            string         `json:"title" db:"title"`
	Description      string         `json:"description" db:"description"`
	Status           TicketStatus   `json:"status" db:"status"`
	Priority         TicketPriority `json:"priority" db:"priority"`
	ResolutionNotes  *string        `json:"resolution_notes" db:"resolution_notes"`
	AttachmentPath   *string        `json:"attachment_path" db:"attachment_path"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
	ResolvedAt       *time.Time     `json:"resolved_at" db:"resolved_at"`
}
