package assetservice

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/lifecycle"
	"assetflow/models"
	"assetflow/policy"
	"assetflow/providers"
	metricsprovider "assetflow/providers/metricsProvider"
	"assetflow/utils"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// UserLookup resolves assignees.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (models.Identity, error)
}

type AssetService interface {
	CreateAsset(ctx context.Context, actor models.Identity, req CreateAssetReq) (models.Asset, error)
	GetAsset(ctx context.Context, actor models.Identity, id int64, includeDepreciation bool) (models.AssetResponse, error)
	ListAssets(ctx context.Context, actor models.Identity, filter AssetFilter) ([]models.AssetResponse, error)
	ListUserAssets(ctx context.Context, actor models.Identity, userID int64) ([]models.AssetResponse, error)
	UpdateAsset(ctx context.Context, actor models.Identity, id int64, req UpdateAssetReq) (models.Asset, error)
	DeleteAsset(ctx context.Context, actor models.Identity, id int64) error
	AssignAsset(ctx context.Context, actor models.Identity, id, userID int64) (models.Asset, error)
	ReleaseAsset(ctx context.Context, actor models.Identity, id int64) (models.Asset, error)
	RetireAsset(ctx context.Context, actor models.Identity, id int64) (models.Asset, error)
	SetAssetStatus(ctx context.Context, actor models.Identity, id int64, status models.AssetStatus) (models.Asset, error)
	GetAssetHistory(ctx context.Context, actor models.Identity, id int64) ([]models.AssetHistoryResponse, error)
	GetDepreciation(ctx context.Context, actor models.Identity, id int64) (models.Depreciation, error)
	ExportAssetsCSV(ctx context.Context, actor models.Identity, filter AssetFilter) ([]byte, error)
}

type assetService struct {
	repo     AssetRepository
	users    UserLookup
	db       *sqlx.DB
	logger   providers.ZapLoggerProvider
	metrics  *metricsprovider.Metrics
	notifier providers.ChangeNotifier
	now      func() time.Time
}

func NewAssetService(repo AssetRepository, users UserLookup, db *sqlx.DB, logger providers.ZapLoggerProvider,
	metrics *metricsprovider.Metrics, notifier providers.ChangeNotifier) AssetService {
	return &assetService{
		repo:     repo,
		users:    users,
		db:       db,
		logger:   logger,
		metrics:  metrics,
		notifier: notifier,
		now:      time.Now,
	}
}

func forbidden(decision policy.Decision) error {
	return apperror.NewAuth(apperror.Forbidden, decision.Reason)
}

func (s *assetService) changed(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Invalidate(ctx)
	}
}

func (s *assetService) CreateAsset(ctx context.Context, actor models.Identity, req CreateAssetReq) (models.Asset, error) {
	if d := policy.Can(actor, policy.CreateAsset, nil); !d.Allowed {
		return models.Asset{}, forbidden(d)
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		return models.Asset{}, apperror.NewFieldValidation("invalid purchase_date", map[string]string{"purchase_date": "must be YYYY-MM-DD"})
	}
	warranty, err := parseDate(req.WarrantyExpiration)
	if err != nil {
		return models.Asset{}, apperror.NewFieldValidation("invalid warranty_expiration", map[string]string{"warranty_expiration": "must be YYYY-MM-DD"})
	}
	if err := utils.AssetValidityCheck(purchaseDate, warranty, req.PurchasePrice, req.Condition); err != nil {
		return models.Asset{}, err
	}
	condition := req.Condition
	if condition == "" {
		condition = models.ConditionGood
	}

	asset := models.Asset{
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		Category:           strings.TrimSpace(req.Category),
		SerialNumber:       strings.TrimSpace(req.SerialNumber),
		PurchaseDate:       purchaseDate,
		PurchasePrice:      req.PurchasePrice,
		WarrantyExpiration: warranty,
		Status:             models.AssetAvailable,
		Condition:          condition,
		Location:           req.Location,
	}

	var created models.Asset
	err = dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		created, err = s.repo.InsertAsset(ctx, tx, asset)
		if err != nil {
			return err
		}
		return s.repo.InsertHistory(ctx, tx, models.AssetHistoryEntry{
			AssetID:           created.ID,
			Action:            models.ActionCreated,
			Details:           fmt.Sprintf("Asset created: %s", created.Name),
			PerformedByUserID: actor.ID,
		})
	})
	if err != nil {
		return models.Asset{}, err
	}
	s.logger.GetLogger().Info("asset created", zap.Int64("asset_id", created.ID), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return created, nil
}

func (s *assetService) withDepreciation(asset models.AssetResponse) models.AssetResponse {
	if d, ok := utils.Depreciate(asset.PurchasePrice, asset.PurchaseDate, s.now()); ok {
		asset.Depreciation = &d
	}
	return asset
}

func (s *assetService) GetAsset(ctx context.Context, actor models.Identity, id int64, includeDepreciation bool) (models.AssetResponse, error) {
	asset, err := s.repo.GetAssetByID(ctx, id)
	if err != nil {
		return models.AssetResponse{}, err
	}
	if d := policy.Can(actor, policy.ViewAsset, policy.AssetResource(asset.Asset)); !d.Allowed {
		return models.AssetResponse{}, forbidden(d)
	}
	if includeDepreciation {
		asset = s.withDepreciation(asset)
	}
	return asset, nil
}

// ListAssets narrows the query to the caller's own assets when the policy
// grants only ownership-scoped access.
func (s *assetService) ListAssets(ctx context.Context, actor models.Identity, filter AssetFilter) ([]models.AssetResponse, error) {
	d := policy.Can(actor, policy.ViewAsset, nil)
	if !d.Allowed {
		return nil, forbidden(d)
	}
	if d.Scoped {
		self := actor.ID
		filter.AssignedTo = &self
	}
	assets, err := s.repo.ListAssets(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.IncludeDepreciation {
		for i := range assets {
			assets[i] = s.withDepreciation(assets[i])
		}
	}
	return assets, nil
}

func (s *assetService) ListUserAssets(ctx context.Context, actor models.Identity, userID int64) ([]models.AssetResponse, error) {
	if d := policy.Can(actor, policy.ViewAsset, policy.OwnedBy(userID)); !d.Allowed {
		return nil, forbidden(d)
	}
	return s.repo.ListAssets(ctx, AssetFilter{AssignedTo: &userID})
}

func describeChange(field string, before, after interface{}) string {
	return fmt.Sprintf("%s: %v -> %v", field, before, after)
}

func formatOptional[T any](v *T) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprint(*v)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(dateLayout)
}

// applyUpdate returns the edited asset and the human readable list of changes.
func applyUpdate(asset models.Asset, req UpdateAssetReq) (models.Asset, []string, error) {
	var changes []string
	if req.Name != nil && *req.Name != asset.Name {
		changes = append(changes, describeChange("name", asset.Name, *req.Name))
		asset.Name = *req.Name
	}
	if req.Description != nil && formatOptional(asset.Description) != *req.Description {
		changes = append(changes, describeChange("description", formatOptional(asset.Description), *req.Description))
		asset.Description = req.Description
	}
	if req.Category != nil && *req.Category != asset.Category {
		changes = append(changes, describeChange("category", asset.Category, *req.Category))
		asset.Category = *req.Category
	}
	if req.SerialNumber != nil && *req.SerialNumber != asset.SerialNumber {
		changes = append(changes, describeChange("serial_number", asset.SerialNumber, *req.SerialNumber))
		asset.SerialNumber = *req.SerialNumber
	}
	if req.PurchasePrice != nil && (asset.PurchasePrice == nil || *asset.PurchasePrice != *req.PurchasePrice) {
		changes = append(changes, describeChange("purchase_price", formatOptional(asset.PurchasePrice), *req.PurchasePrice))
		asset.PurchasePrice = req.PurchasePrice
	}
	if req.Condition != nil && *req.Condition != asset.Condition {
		changes = append(changes, describeChange("condition", asset.Condition, *req.Condition))
		asset.Condition = *req.Condition
	}
	if req.Location != nil && formatOptional(asset.Location) != *req.Location {
		changes = append(changes, describeChange("location", formatOptional(asset.Location), *req.Location))
		asset.Location = req.Location
	}
	if req.PurchaseDate != nil {
		date, err := parseDate(req.PurchaseDate)
		if err != nil {
			return asset, nil, apperror.NewFieldValidation("invalid purchase_date", map[string]string{"purchase_date": "must be YYYY-MM-DD"})
		}
		if formatDate(date) != formatDate(asset.PurchaseDate) {
			changes = append(changes, describeChange("purchase_date", formatDate(asset.PurchaseDate), formatDate(date)))
			asset.PurchaseDate = date
		}
	}
	if req.WarrantyExpiration != nil {
		date, err := parseDate(req.WarrantyExpiration)
		if err != nil {
			return asset, nil, apperror.NewFieldValidation("invalid warranty_expiration", map[string]string{"warranty_expiration": "must be YYYY-MM-DD"})
		}
		if formatDate(date) != formatDate(asset.WarrantyExpiration) {
			changes = append(changes, describeChange("warranty_expiration", formatDate(asset.WarrantyExpiration), formatDate(date)))
			asset.WarrantyExpiration = date
		}
	}
	return asset, changes, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, actor models.Identity, id int64, req UpdateAssetReq) (models.Asset, error) {
	if d := policy.Can(actor, policy.EditAsset, nil); !d.Allowed {
		return models.Asset{}, forbidden(d)
	}

	var updated models.Asset
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetAssetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		next, changes, err := applyUpdate(current, req)
		if err != nil {
			return err
		}
		if err := utils.AssetValidityCheck(next.PurchaseDate, next.WarrantyExpiration, next.PurchasePrice, next.Condition); err != nil {
			return err
		}
		if len(changes) == 0 {
			updated = current
			return nil
		}
		updated, err = s.repo.UpdateAssetDetails(ctx, tx, next)
		if err != nil {
			return err
		}
		return s.repo.InsertHistory(ctx, tx, models.AssetHistoryEntry{
			AssetID:           id,
			Action:            models.ActionUpdated,
			Details:           "Asset updated: " + strings.Join(changes, ", "),
			PerformedByUserID: actor.ID,
		})
	})
	if err != nil {
		return models.Asset{}, err
	}
	s.changed(ctx)
	return updated, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, actor models.Identity, id int64) error {
	if d := policy.Can(actor, policy.DeleteAsset, nil); !d.Allowed {
		return forbidden(d)
	}
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetAssetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.Status == models.AssetAssigned {
			return apperror.NewConflict(apperror.InUse, "Cannot delete an assigned asset. Please release it first.")
		}
		if err := s.repo.DeleteAssetByID(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.InsertHistory(ctx, tx, models.AssetHistoryEntry{
			AssetID:           id,
			Action:            models.ActionDeleted,
			Details:           fmt.Sprintf("Asset deleted: %s (%s)", current.Name, current.SerialNumber),
			PerformedByUserID: actor.ID,
		})
	})
	if err != nil {
		return err
	}
	s.logger.GetLogger().Info("asset deleted", zap.Int64("asset_id", id), zap.Int64("by", actor.ID))
	s.changed(ctx)
	return nil
}

// transition locks the asset, applies move and persists the result with its
// history entry in one transaction.
func (s *assetService) transition(ctx context.Context, id int64, action string, move func(models.Asset) (lifecycle.Transition, error)) (models.Asset, error) {
	var saved models.Asset
	err := dbhelper.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetAssetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := move(current)
		if err != nil {
			return err
		}
		saved, err = s.repo.SaveTransition(ctx, tx, next.Asset)
		if err != nil {
			return err
		}
		return s.repo.InsertHistory(ctx, tx, next.History)
	})
	s.metrics.ObserveTransition(action, err)
	if err != nil {
		return models.Asset{}, err
	}
	s.logger.GetLogger().Info("asset transition",
		zap.String("action", action),
		zap.Int64("asset_id", id),
		zap.String("status", string(saved.Status)))
	s.changed(ctx)
	return saved, nil
}

func (s *assetService) AssignAsset(ctx context.Context, actor models.Identity, id, userID int64) (models.Asset, error) {
	var assignee *models.Identity
	user, err := s.users.GetUserByID(ctx, userID)
	switch {
	case err == nil:
		assignee = &user
	case !apperror.IsNotFound(err):
		return models.Asset{}, err
	}
	return s.transition(ctx, id, "asset.assign", func(a models.Asset) (lifecycle.Transition, error) {
		return lifecycle.Assign(a, actor, assignee)
	})
}

func (s *assetService) ReleaseAsset(ctx context.Context, actor models.Identity, id int64) (models.Asset, error) {
	return s.transition(ctx, id, "asset.release", func(a models.Asset) (lifecycle.Transition, error) {
		return lifecycle.Release(a, actor)
	})
}

func (s *assetService) RetireAsset(ctx context.Context, actor models.Identity, id int64) (models.Asset, error) {
	return s.transition(ctx, id, "asset.retire", func(a models.Asset) (lifecycle.Transition, error) {
		return lifecycle.Retire(a, actor)
	})
}

func (s *assetService) SetAssetStatus(ctx context.Context, actor models.Identity, id int64, status models.AssetStatus) (models.Asset, error) {
	return s.transition(ctx, id, "asset.status", func(a models.Asset) (lifecycle.Transition, error) {
		return lifecycle.SetStatus(a, actor, status)
	})
}

func (s *assetService) GetAssetHistory(ctx context.Context, actor models.Identity, id int64) ([]models.AssetHistoryResponse, error) {
	if _, err := s.GetAsset(ctx, actor, id, false); err != nil {
		return nil, err
	}
	return s.repo.GetAssetHistory(ctx, id)
}

func (s *assetService) GetDepreciation(ctx context.Context, actor models.Identity, id int64) (models.Depreciation, error) {
	asset, err := s.GetAsset(ctx, actor, id, true)
	if err != nil {
		return models.Depreciation{}, err
	}
	if asset.Depreciation == nil {
		return models.Depreciation{}, apperror.NewValidation(apperror.InvalidField,
			"Cannot calculate depreciation. Purchase price and date are required.")
	}
	return *asset.Depreciation, nil
}

var exportHeader = []string{
	"ID", "Name", "Category", "Serial Number", "Status", "Condition",
	"Purchase Date", "Purchase Price", "Warranty Expiration",
	"Assigned To", "Location", "Created At",
}

func (s *assetService) ExportAssetsCSV(ctx context.Context, actor models.Identity, filter AssetFilter) ([]byte, error) {
	if d := policy.Can(actor, policy.ExportAssets, nil); !d.Allowed {
		return nil, forbidden(d)
	}
	filter.Limit, filter.Offset = 0, 0
	assets, err := s.repo.ListAssets(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, a := range assets {
		price := ""
		if a.PurchasePrice != nil {
			price = strconv.FormatFloat(*a.PurchasePrice, 'f', 2, 64)
		}
		assignedTo := ""
		if a.AssignedToUsername != nil {
			assignedTo = *a.AssignedToUsername
		}
		location := ""
		if a.Location != nil {
			location = *a.Location
		}
		row := []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Category,
			a.SerialNumber,
			string(a.Status),
			string(a.Condition),
			optionalDate(a.PurchaseDate),
			price,
			optionalDate(a.WarrantyExpiration),
			assignedTo,
			location,
			a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
