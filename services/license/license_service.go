package licenseservice

import (
	"context"
	"strings"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/models"
	"assetflow/policy"
	"assetflow/providers"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type LicenseService interface {
	ListLicenses(ctx context.Context, actor models.Identity, filter LicenseFilter) ([]models.LicenseResponse, error)
	GetLicense(ctx context.Context, actor models.Identity, id int64) (models.LicenseResponse, error)
	CreateLicense(ctx context.Context, actor models.Identity, req CreateLicenseReq) (models.License, error)
	UpdateLicense(ctx context.Context, actor models.Identity, id int64, req UpdateLicenseReq) (models.License, error)
	DeleteLicense(ctx context.Context, actor models.Identity, id int64) error
	ExpiringLicenses(ctx context.Context, actor models.Identity, days int) ([]models.LicenseResponse, error)
}

type licenseService struct {
	repo     LicenseRepository
	db       *sqlx.DB
	logger   providers.ZapLoggerProvider
	notifier providers.ChangeNotifier
}

func NewLicenseService(repo LicenseRepository, db *sqlx.DB, logger providers.ZapLoggerProvider,
	notifier providers.ChangeNotifier) LicenseService {
	return &licenseService{
		repo:     repo,
		db:       db,
		logger:   logger,
		notifier: notifier,
	}
}

func authorize(actor models.Identity, action policy.Action) error {
	if d := policy.Can(actor, action, nil); !d.Allowed {
		return apperror.NewAuth(apperror.Forbidden, d.Reason)
	}
	return nil
}

func (s *licenseService) changed(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Invalidate(ctx)
	}
}

func dateError(field string) error {
	return apperror.NewFieldValidation("invalid "+field, map[string]string{field: "must be YYYY-MM-DD"})
}

func checkLicense(l models.License) error {
	if !l.Status.IsValid() {
		return apperror.NewFieldValidation("invalid status", map[string]string{"status": "must be one of Active, Expired, Cancelled"})
	}
	if l.PurchaseDate != nil && l.ExpirationDate != nil && l.ExpirationDate.Before(*l.PurchaseDate) {
		return apperror.NewFieldValidation("expiration_date is before purchase_date",
			map[string]string{"expiration_date": "must not be before purchase_date"})
	}
	return nil
}

func (s *licenseService) ListLicenses(ctx context.Context, actor models.Identity, filter LicenseFilter) ([]models.LicenseResponse, error) {
	if err := authorize(actor, policy.ViewLicense); err != nil {
		return nil, err
	}
	if filter.Status != "" && !models.LicenseStatus(filter.Status).IsValid() {
		return nil, apperror.NewFieldValidation("invalid status", map[string]string{"status": "must be one of Active, Expired, Cancelled"})
	}
	return s.repo.ListLicenses(ctx, filter)
}

func (s *licenseService) GetLicense(ctx context.Context, actor models.Identity, id int64) (models.LicenseResponse, error) {
	if err := authorize(actor, policy.ViewLicense); err != nil {
		return models.LicenseResponse{}, err
	}
	return s.repo.GetLicenseByID(ctx, id)
}

func (s *licenseService) CreateLicense(ctx context.Context, actor models.Identity, req CreateLicenseReq) (models.License, error) {
	if err := authorize(actor, policy.ManageLicense); err != nil {
		return models.License{}, err
	}
	purchased, err := parseDate(req.PurchaseDate)
	if err != nil {
		return models.License{}, dateError("purchase_date")
	}
	expires, err := parseDate(req.ExpirationDate)
	if err != nil {
		return models.License{}, dateError("expiration_date")
	}

	license := models.License{
		AssetID:        req.AssetID,
		SoftwareName:   strings.TrimSpace(req.SoftwareName),
		LicenseKey:     req.LicenseKey,
		Vendor:         req.Vendor,
		PurchaseDate:   purchased,
		ExpirationDate: expires,
		Cost:           req.Cost,
		Seats:          1,
		Status:         models.LicenseActive,
	}
	if req.Seats != nil {
		license.Seats = *req.Seats
	}
	if req.Status != "" {
		license.Status = req.Status
	}
	if err := checkLicense(license); err != nil {
		return models.License{}, err
	}

	created, err := s.repo.InsertLicense(ctx, license)
	if err != nil {
		return models.License{}, err
	}
	s.logger.GetLogger().Info("license created", zap.Int64("license_id", created.ID), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return created, nil
}

func applyUpdate(l models.License, req UpdateLicenseReq) (models.License, error) {
	if req.AssetID != nil {
		l.AssetID = req.AssetID
	}
	if req.SoftwareName != nil {
		l.SoftwareName = strings.TrimSpace(*req.SoftwareName)
	}
	if req.LicenseKey != nil {
		l.LicenseKey = req.LicenseKey
	}
	if req.Vendor != nil {
		l.Vendor = req.Vendor
	}
	if req.Cost != nil {
		l.Cost = req.Cost
	}
	if req.Seats != nil {
		l.Seats = *req.Seats
	}
	if req.Status != nil {
		l.Status = *req.Status
	}
	if req.PurchaseDate != nil {
		date, err := parseDate(req.PurchaseDate)
		if err != nil {
			return l, dateError("purchase_date")
		}
		l.PurchaseDate = date
	}
	if req.ExpirationDate != nil {
		date, err := parseDate(req.ExpirationDate)
		if err != nil {
			return l, dateError("expiration_date")
		}
		l.ExpirationDate = date
	}
	return l, checkLicense(l)
}

func (s *licenseService) UpdateLicense(ctx context.Context, actor models.Identity, id int64, req UpdateLicenseReq) (models.License, error) {
	if err := authorize(actor, policy.ManageLicense); err != nil {
		return models.License{}, err
	}
	var updated models.License
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetLicenseForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := applyUpdate(current, req)
		if err != nil {
			return err
		}
		updated, err = s.repo.UpdateLicense(ctx, tx, next)
		return err
	})
	if err != nil {
		return models.License{}, err
	}
	s.logger.GetLogger().Info("license updated", zap.Int64("license_id", id), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return updated, nil
}

func (s *licenseService) DeleteLicense(ctx context.Context, actor models.Identity, id int64) error {
	if err := authorize(actor, policy.ManageLicense); err != nil {
		return err
	}
	if err := s.repo.DeleteLicenseByID(ctx, id); err != nil {
		return err
	}
	s.logger.GetLogger().Info("license deleted", zap.Int64("license_id", id), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return nil
}

func (s *licenseService) ExpiringLicenses(ctx context.Context, actor models.Identity, days int) ([]models.LicenseResponse, error) {
	if err := authorize(actor, policy.ViewLicense); err != nil {
		return nil, err
	}
	if days < 0 {
		return nil, apperror.NewFieldValidation("invalid days", map[string]string{"days": "must be a non-negative integer"})
	}
	return s.repo.ListExpiring(ctx, days)
}

