package maintenanceservice

import (
	"context"
	"fmt"
	"io"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/lifecycle"
	"assetflow/models"
	"assetflow/policy"
	"assetflow/providers"
	metricsprovider "assetflow/providers/metricsProvider"
	assetservice "assetflow/services/asset"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type TicketService interface {
	CreateTicket(ctx context.Context, actor models.Identity, req CreateTicketReq) (models.MaintenanceTicket, error)
	GetTicket(ctx context.Context, actor models.Identity, id int64) (TicketResponse, error)
	ListTickets(ctx context.Context, actor models.Identity, filter TicketFilter) ([]TicketResponse, error)
	UpdateTicket(ctx context.Context, actor models.Identity, id int64, req UpdateTicketReq) (models.MaintenanceTicket, error)
	SetTicketStatus(ctx context.Context, actor models.Identity, id int64, status models.TicketStatus) (models.MaintenanceTicket, error)
	AssignTicket(ctx context.Context, actor models.Identity, id, userID int64) (models.MaintenanceTicket, error)
	DeleteTicket(ctx context.Context, actor models.Identity, id int64) error
	UploadAttachment(ctx context.Context, actor models.Identity, id int64, filename string, content io.Reader) (string, error)
}

type Options struct {
	Linkage        lifecycle.AssetLinkage
	Store          FileStore
	MaxUploadBytes int64
}

type ticketService struct {
	repo     TicketRepository
	assets   assetservice.AssetRepository
	users    assetservice.UserLookup
	db       *sqlx.DB
	machine  *lifecycle.TicketMachine
	linkage  lifecycle.AssetLinkage
	store    FileStore
	maxBytes int64
	logger   providers.ZapLoggerProvider
	metrics  *metricsprovider.Metrics
	notifier providers.ChangeNotifier
}

func NewTicketService(repo TicketRepository, assets assetservice.AssetRepository, users assetservice.UserLookup, db *sqlx.DB,
	opts Options, logger providers.ZapLoggerProvider, metrics *metricsprovider.Metrics, notifier providers.ChangeNotifier) TicketService {
	if opts.Linkage == nil {
		opts.Linkage = lifecycle.ManualLinkage{}
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 16 << 20
	}
	return &ticketService{
		repo:     repo,
		assets:   assets,
		users:    users,
		db:       db,
		machine:  lifecycle.NewTicketMachine(nil),
		linkage:  opts.Linkage,
		store:    opts.Store,
		maxBytes: opts.MaxUploadBytes,
		logger:   logger,
		metrics:  metrics,
		notifier: notifier,
	}
}

func forbidden(decision policy.Decision) error {
	return apperror.NewAuth(apperror.Forbidden, decision.Reason)
}

func (s *ticketService) changed(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Invalidate(ctx)
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, actor models.Identity, req CreateTicketReq) (models.MaintenanceTicket, error) {
	var created models.MaintenanceTicket
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		asset, err := s.assets.GetAssetForUpdate(ctx, tx, req.AssetID)
		if err != nil {
			return err
		}
		ticket, err := s.machine.Open(asset, actor, lifecycle.NewTicketInput{
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
		})
		if err != nil {
			return err
		}
		created, err = s.repo.InsertTicket(ctx, tx, ticket)
		return err
	})
	if err != nil {
		return models.MaintenanceTicket{}, err
	}
	s.logger.GetLogger().Info("ticket created",
		zap.Int64("ticket_id", created.ID),
		zap.Int64("asset_id", created.AssetID),
		zap.Int64("by", actor.ID))
	s.changed(ctx)
	return created, nil
}

func (s *ticketService) GetTicket(ctx context.Context, actor models.Identity, id int64) (TicketResponse, error) {
	ticket, err := s.repo.GetTicketByID(ctx, id)
	if err != nil {
		return TicketResponse{}, err
	}
	if d := policy.Can(actor, policy.ViewTicket, policy.TicketResource(ticket.MaintenanceTicket)); !d.Allowed {
		return TicketResponse{}, forbidden(d)
	}
	return ticket, nil
}

// ListTickets restricts employees to the tickets they reported.
func (s *ticketService) ListTickets(ctx context.Context, actor models.Identity, filter TicketFilter) ([]TicketResponse, error) {
	d := policy.Can(actor, policy.ViewTicket, nil)
	if !d.Allowed {
		return nil, forbidden(d)
	}
	if d.Scoped {
		self := actor.ID
		filter.ReportedBy = &self
	}
	return s.repo.ListTickets(ctx, filter)
}

func (s *ticketService) UpdateTicket(ctx context.Context, actor models.Identity, id int64, req UpdateTicketReq) (models.MaintenanceTicket, error) {
	if req.Priority != nil && !req.Priority.IsValid() {
		return models.MaintenanceTicket{}, apperror.NewFieldValidation("invalid priority",
			map[string]string{"priority": "must be one of Low, Medium, High, Critical"})
	}
	var saved models.MaintenanceTicket
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		ticket, err := s.repo.GetTicketForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if d := policy.Can(actor, policy.UpdateTicket, policy.TicketResource(ticket)); !d.Allowed {
			return forbidden(d)
		}
		if req.Title != nil {
			ticket.Title = *req.Title
		}
		if req.Description != nil {
			ticket.Description = *req.Description
		}
		if req.Priority != nil {
			ticket.Priority = *req.Priority
		}
		if req.ResolutionNotes != nil {
			ticket.ResolutionNotes = req.ResolutionNotes
		}
		saved, err = s.repo.SaveTicket(ctx, tx, ticket)
		return err
	})
	if err != nil {
		return models.MaintenanceTicket{}, err
	}
	return saved, nil
}

// applyLinkage moves the ticket's asset when the configured linkage asks for
// it. It runs inside the ticket's transaction.
func (s *ticketService) applyLinkage(ctx context.Context, tx *sqlx.Tx, actor models.Identity, ticket models.MaintenanceTicket, event lifecycle.TicketEvent) error {
	if _, ok := s.linkage.(lifecycle.ManualLinkage); ok {
		return nil
	}
	asset, err := s.assets.GetAssetForUpdate(ctx, tx, ticket.AssetID)
	if err != nil {
		return err
	}
	target, move := s.linkage.Target(event, asset)
	if !move {
		return nil
	}
	next, err := lifecycle.SetStatus(asset, actor, target)
	s.metrics.ObserveTransition("asset.status", err)
	if err != nil {
		return err
	}
	next.History.Details = fmt.Sprintf("%s (maintenance ticket #%d)", next.History.Details, ticket.ID)
	if _, err := s.assets.SaveTransition(ctx, tx, next.Asset); err != nil {
		return err
	}
	if err := s.assets.InsertHistory(ctx, tx, next.History); err != nil {
		return err
	}
	s.logger.GetLogger().Info("asset moved by ticket",
		zap.Int64("asset_id", asset.ID),
		zap.Int64("ticket_id", ticket.ID),
		zap.String("status", string(target)))
	return nil
}

func (s *ticketService) SetTicketStatus(ctx context.Context, actor models.Identity, id int64, status models.TicketStatus) (models.MaintenanceTicket, error) {
	var saved models.MaintenanceTicket
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		ticket, err := s.repo.GetTicketForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := s.machine.SetStatus(ticket, actor, status)
		if err != nil {
			return err
		}
		saved, err = s.repo.SaveTicket(ctx, tx, next)
		if err != nil {
			return err
		}
		return s.applyLinkage(ctx, tx, actor, saved, lifecycle.TicketEvent{Previous: ticket.Status, Current: saved.Status})
	})
	s.metrics.ObserveTransition("ticket.status", err)
	if err != nil {
		return models.MaintenanceTicket{}, err
	}
	s.changed(ctx)
	return saved, nil
}

// AssignTicket hands the ticket to a user. A New ticket moves to Under Review
// once someone owns it.
func (s *ticketService) AssignTicket(ctx context.Context, actor models.Identity, id, userID int64) (models.MaintenanceTicket, error) {
	var assignee *models.Identity
	user, err := s.users.GetUserByID(ctx, userID)
	switch {
	case err == nil:
		assignee = &user
	case !apperror.IsNotFound(err):
		return models.MaintenanceTicket{}, err
	}

	var saved models.MaintenanceTicket
	err = dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		ticket, err := s.repo.GetTicketForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := s.machine.Assign(ticket, actor, assignee)
		if err != nil {
			return err
		}
		if next.Status == models.TicketNew {
			if next, err = s.machine.SetStatus(next, actor, models.TicketUnderReview); err != nil {
				return err
			}
		}
		saved, err = s.repo.SaveTicket(ctx, tx, next)
		return err
	})
	s.metrics.ObserveTransition("ticket.assign", err)
	if err != nil {
		return models.MaintenanceTicket{}, err
	}
	s.changed(ctx)
	return saved, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, actor models.Identity, id int64) error {
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		ticket, err := s.repo.GetTicketForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.machine.Delete(ticket, actor); err != nil {
			return err
		}
		if err := s.applyLinkage(ctx, tx, actor, ticket, lifecycle.TicketEvent{Previous: ticket.Status, Current: ticket.Status, Deleted: true}); err != nil {
			return err
		}
		return s.repo.DeleteTicketByID(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.logger.GetLogger().Info("ticket deleted", zap.Int64("ticket_id", id), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return nil
}

// UploadAttachment stores the file and returns its public URL.
func (s *ticketService) UploadAttachment(ctx context.Context, actor models.Identity, id int64, filename string, content io.Reader) (string, error) {
	ticket, err := s.repo.GetTicketByID(ctx, id)
	if err != nil {
		return "", err
	}
	if d := policy.Can(actor, policy.UploadTicketAttachment, policy.TicketResource(ticket.MaintenanceTicket)); !d.Allowed {
		return "", forbidden(d)
	}

	data, err := io.ReadAll(io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := checkAttachment(filename, data, s.maxBytes); err != nil {
		return "", err
	}

	name := attachmentName(id, filename)
	if err := s.store.Save(name, data); err != nil {
		return "", err
	}
	url := "/uploads/" + name
	if err := s.repo.SetAttachment(ctx, id, url); err != nil {
		return "", err
	}
	s.logger.GetLogger().Info("ticket attachment stored", zap.Int64("ticket_id", id), zap.String("file", name))
	return url, nil
}
