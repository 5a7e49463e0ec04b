package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/policy"
)

// TicketMachine applies ticket transitions. Status is a free-form setter:
// any valid status may follow any other, and only resolved_at is derived.
type TicketMachine struct {
	now func() time.Time
}

func NewTicketMachine(now func() time.Time) *TicketMachine {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &TicketMachine{now: now}
}

type NewTicketInput struct {
	Title       string
	Description string
	Priority    models.TicketPriority
}

// Open builds a ticket against an asset. Employees may only report on assets
// assigned to them.
func (m *TicketMachine) Open(asset models.Asset, reporter models.Identity, in NewTicketInput) (models.MaintenanceTicket, error) {
	if err := authorize(reporter, policy.CreateTicket, policy.AssetResource(asset)); err != nil {
		return models.MaintenanceTicket{}, err
	}
	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "description is required"
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !in.Priority.IsValid() {
		fields["priority"] = "must be one of Low, Medium, High, Critical"
	}
	if len(fields) > 0 {
		return models.MaintenanceTicket{}, apperror.NewFieldValidation("invalid ticket", fields)
	}

	now := m.now()
	return models.MaintenanceTicket{
		AssetID:          asset.ID,
		ReportedByUserID: reporter.ID,
		Title:            strings.TrimSpace(in.Title),
		Description:      strings.TrimSpace(in.Description),
		Status:           models.TicketNew,
		Priority:         in.Priority,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// SetStatus moves a ticket to any status. Entering Resolved or Closed stamps
// resolved_at unless it is already set; any other status clears it.
func (m *TicketMachine) SetStatus(ticket models.MaintenanceTicket, actor models.Identity, status models.TicketStatus) (models.MaintenanceTicket, error) {
	if err := authorize(actor, policy.ChangeTicketStatus, policy.TicketResource(ticket)); err != nil {
		return models.MaintenanceTicket{}, err
	}
	if !status.IsValid() {
		return models.MaintenanceTicket{}, apperror.NewFieldValidation(
			fmt.Sprintf("invalid status %q", status),
			map[string]string{"status": "must be one of New, Under Review, In Progress, Resolved, Closed"})
	}

	next := ticket
	next.Status = status
	next.UpdatedAt = m.now()
	if status.IsTerminal() {
		if next.ResolvedAt == nil {
			resolvedAt := next.UpdatedAt
			next.ResolvedAt = &resolvedAt
		}
	} else {
		next.ResolvedAt = nil
	}
	return next, nil
}

// Assign hands the ticket to a technician. A nil assignee means the user does
// not exist.
func (m *TicketMachine) Assign(ticket models.MaintenanceTicket, actor models.Identity, assignee *models.Identity) (models.MaintenanceTicket, error) {
	if err := authorize(actor, policy.ChangeTicketAssignment, policy.TicketResource(ticket)); err != nil {
		return models.MaintenanceTicket{}, err
	}
	if assignee == nil {
		return models.MaintenanceTicket{}, apperror.NewValidation(apperror.InvalidAssignee, "assignee does not exist")
	}
	if !assignee.IsActive {
		return models.MaintenanceTicket{}, apperror.NewValidation(apperror.InvalidAssignee, "assignee is not active")
	}

	next := ticket
	userID := assignee.ID
	next.AssignedToUserID = &userID
	next.UpdatedAt = m.now()
	return next, nil
}

// Delete only authorizes the removal.
func (m *TicketMachine) Delete(ticket models.MaintenanceTicket, actor models.Identity) error {
	return authorize(actor, policy.DeleteTicket, policy.TicketResource(ticket))
}
