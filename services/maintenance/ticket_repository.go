package maintenanceservice

import (
	"context"
	"database/sql"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type TicketRepository interface {
	GetTicketByID(ctx context.Context, id int64) (TicketResponse, error)
	GetTicketForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (models.MaintenanceTicket, error)
	InsertTicket(ctx context.Context, tx *sqlx.Tx, ticket models.MaintenanceTicket) (models.MaintenanceTicket, error)
	SaveTicket(ctx context.Context, tx *sqlx.Tx, ticket models.MaintenanceTicket) (models.MaintenanceTicket, error)
	DeleteTicketByID(ctx context.Context, tx *sqlx.Tx, id int64) error
	ListTickets(ctx context.Context, filter TicketFilter) ([]TicketResponse, error)
	SetAttachment(ctx context.Context, id int64, path string) error
}

type PostgresTicketRepository struct {
	DB *sqlx.DB
}

func NewTicketRepository(db *sqlx.DB) TicketRepository {
	return &PostgresTicketRepository{DB: db}
}

const ticketColumns = `id, asset_id, reported_by_user_id, assigned_to_user_id, title, description, status, priority,
	resolution_notes, attachment_path, created_at, updated_at, resolved_at`

const ticketResponseSelect = `
	SELECT t.id, t.asset_id, t.reported_by_user_id, t.assigned_to_user_id, t.title, t.description, t.status,
		t.priority, t.resolution_notes, t.attachment_path, t.created_at, t.updated_at, t.resolved_at,
		a.name AS asset_name, r.username AS reporter_username, s.username AS assignee_username
	FROM maintenance_tickets t
	LEFT JOIN assets a ON a.id = t.asset_id
	LEFT JOIN users r ON r.id = t.reported_by_user_id
	LEFT JOIN users s ON s.id = t.assigned_to_user_id`

func (r *PostgresTicketRepository) GetTicketByID(ctx context.Context, id int64) (TicketResponse, error) {
	var ticket TicketResponse
	err := r.DB.GetContext(ctx, &ticket, ticketResponseSelect+` WHERE t.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TicketResponse{}, apperror.NewNotFound("ticket")
		}
		return TicketResponse{}, errors.Wrap(err, "failed to fetch ticket")
	}
	return ticket, nil
}

func (r *PostgresTicketRepository) GetTicketForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	err := tx.GetContext(ctx, &ticket, `SELECT `+ticketColumns+` FROM maintenance_tickets WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MaintenanceTicket{}, apperror.NewNotFound("ticket")
		}
		return models.MaintenanceTicket{}, errors.Wrap(err, "failed to lock ticket")
	}
	return ticket, nil
}

func (r *PostgresTicketRepository) InsertTicket(ctx context.Context, tx *sqlx.Tx, ticket models.MaintenanceTicket) (models.MaintenanceTicket, error) {
	var created models.MaintenanceTicket
	err := tx.GetContext(ctx, &created, `
		INSERT INTO maintenance_tickets (asset_id, reported_by_user_id, title, description, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+ticketColumns,
		ticket.AssetID, ticket.ReportedByUserID, ticket.Title, ticket.Description, ticket.Status, ticket.Priority)
	if err != nil {
		if dbhelper.IsForeignKeyViolation(err) {
			return models.MaintenanceTicket{}, apperror.NewNotFound("asset")
		}
		return models.MaintenanceTicket{}, errors.Wrap(err, "failed to insert ticket")
	}
	return created, nil
}

func (r *PostgresTicketRepository) SaveTicket(ctx context.Context, tx *sqlx.Tx, ticket models.MaintenanceTicket) (models.MaintenanceTicket, error) {
	var saved models.MaintenanceTicket
	err := tx.GetContext(ctx, &saved, `
		UPDATE maintenance_tickets
		SET title = $1, description = $2, priority = $3, resolution_notes = $4, status = $5,
			assigned_to_user_id = $6, resolved_at = $7, updated_at = now()
		WHERE id = $8
		RETURNING `+ticketColumns,
		ticket.Title, ticket.Description, ticket.Priority, ticket.ResolutionNotes, ticket.Status,
		ticket.AssignedToUserID, ticket.ResolvedAt, ticket.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MaintenanceTicket{}, apperror.NewNotFound("ticket")
		}
		if dbhelper.IsCheckViolation(err) {
			return models.MaintenanceTicket{}, apperror.NewConflict(apperror.InvalidTransition, "resolved_at does not match ticket status")
		}
		if dbhelper.IsForeignKeyViolation(err) {
			return models.MaintenanceTicket{}, apperror.NewValidation(apperror.InvalidAssignee, "assignee does not exist")
		}
		return models.MaintenanceTicket{}, errors.Wrap(err, "failed to save ticket")
	}
	return saved, nil
}

func (r *PostgresTicketRepository) DeleteTicketByID(ctx context.Context, tx *sqlx.Tx, id int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM maintenance_tickets WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete ticket")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("ticket")
	}
	return nil
}

func (r *PostgresTicketRepository) ListTickets(ctx context.Context, filter TicketFilter) ([]TicketResponse, error) {
	var assetID, reportedBy, assignedTo interface{}
	if filter.AssetID != nil {
		assetID = *filter.AssetID
	}
	if filter.ReportedBy != nil {
		reportedBy = *filter.ReportedBy
	}
	if filter.AssignedTo != nil {
		assignedTo = *filter.AssignedTo
	}

	args := []interface{}{
		filter.Status,
		filter.Priority,
		assetID,
		reportedBy,
		assignedTo,
		filter.Limit,
		filter.Offset,
	}

	query := ticketResponseSelect + `
		WHERE ($1 = '' OR t.status = $1)
		AND ($2 = '' OR t.priority = $2)
		AND ($3::bigint IS NULL OR t.asset_id = $3)
		AND ($4::bigint IS NULL OR t.reported_by_user_id = $4)
		AND ($5::bigint IS NULL OR t.assigned_to_user_id = $5)
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $6 OFFSET $7`

	tickets := []TicketResponse{}
	if err := r.DB.SelectContext(ctx, &tickets, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}
	return tickets, nil
}

func (r *PostgresTicketRepository) SetAttachment(ctx context.Context, id int64, path string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE maintenance_tickets SET attachment_path = $1, updated_at = now() WHERE id = $2`, path, id)
	if err != nil {
		return errors.Wrap(err, "failed to save attachment reference")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("ticket")
	}
	return nil
}
