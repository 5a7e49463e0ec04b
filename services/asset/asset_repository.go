package assetservice

import (
	"context"
	"database/sql"
	"fmt"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type AssetRepository interface {
	GetAssetByID(ctx context.Context, id int64) (models.AssetResponse, error)
	GetAssetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (models.Asset, error)
	InsertAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error)
	UpdateAssetDetails(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error)
	SaveTransition(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error)
	DeleteAssetByID(ctx context.Context, tx *sqlx.Tx, id int64) error
	InsertHistory(ctx context.Context, tx *sqlx.Tx, entry models.AssetHistoryEntry) error
	ListAssets(ctx context.Context, filter AssetFilter) ([]models.AssetResponse, error)
	GetAssetHistory(ctx context.Context, assetID int64) ([]models.AssetHistoryResponse, error)
}

type PostgresAssetRepository struct {
	DB *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) AssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetColumns = `id, name, description, category, serial_number, purchase_date, purchase_price,
	warranty_expiration, status, condition, assigned_to_user_id, location, created_at, updated_at`

const assetResponseSelect = `
	SELECT a.id, a.name, a.description, a.category, a.serial_number, a.purchase_date, a.purchase_price,
		a.warranty_expiration, a.status, a.condition, a.assigned_to_user_id, a.location, a.created_at, a.updated_at,
		u.username AS assigned_to_username
	FROM assets a
	LEFT JOIN users u ON u.id = a.assigned_to_user_id`

func (r *PostgresAssetRepository) GetAssetByID(ctx context.Context, id int64) (models.AssetResponse, error) {
	var asset models.AssetResponse
	err := r.DB.GetContext(ctx, &asset, assetResponseSelect+` WHERE a.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AssetResponse{}, apperror.NewNotFound("asset")
		}
		return models.AssetResponse{}, errors.Wrap(err, "failed to fetch asset")
	}
	return asset, nil
}

// GetAssetForUpdate locks the asset row until the transaction ends, so
// concurrent transitions on one asset run one after the other.
func (r *PostgresAssetRepository) GetAssetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (models.Asset, error) {
	var asset models.Asset
	err := tx.GetContext(ctx, &asset, `SELECT `+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, apperror.NewNotFound("asset")
		}
		return models.Asset{}, errors.Wrap(err, "failed to lock asset")
	}
	return asset, nil
}

func (r *PostgresAssetRepository) InsertAsset(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error) {
	var created models.Asset
	err := tx.GetContext(ctx, &created, `
		INSERT INTO assets (
			name, description, category, serial_number, purchase_date,
			purchase_price, warranty_expiration, status, condition, location
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+assetColumns,
		asset.Name, asset.Description, asset.Category, asset.SerialNumber, asset.PurchaseDate,
		asset.PurchasePrice, asset.WarrantyExpiration, asset.Status, asset.Condition, asset.Location)
	if err != nil {
		if dbhelper.IsUniqueViolation(err) {
			return models.Asset{}, apperror.NewConflict(apperror.Duplicate, "Serial number already exists")
		}
		return models.Asset{}, errors.Wrap(err, "failed to insert asset")
	}
	return created, nil
}

func (r *PostgresAssetRepository) UpdateAssetDetails(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error) {
	var updated models.Asset
	err := tx.GetContext(ctx, &updated, `
		UPDATE assets
		SET name = $1, description = $2, category = $3, serial_number = $4, purchase_date = $5,
			purchase_price = $6, warranty_expiration = $7, condition = $8, location = $9, updated_at = now()
		WHERE id = $10
		RETURNING `+assetColumns,
		asset.Name, asset.Description, asset.Category, asset.SerialNumber, asset.PurchaseDate,
		asset.PurchasePrice, asset.WarrantyExpiration, asset.Condition, asset.Location, asset.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, apperror.NewNotFound("asset")
		}
		if dbhelper.IsUniqueViolation(err) {
			return models.Asset{}, apperror.NewConflict(apperror.Duplicate, "Serial number already exists")
		}
		return models.Asset{}, errors.Wrap(err, "failed to update asset")
	}
	return updated, nil
}

// SaveTransition persists the status and assignee produced by a lifecycle
// transition.
func (r *PostgresAssetRepository) SaveTransition(ctx context.Context, tx *sqlx.Tx, asset models.Asset) (models.Asset, error) {
	var updated models.Asset
	err := tx.GetContext(ctx, &updated, `
		UPDATE assets SET status = $1, assigned_to_user_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING `+assetColumns,
		asset.Status, asset.AssignedToUserID, asset.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, apperror.NewNotFound("asset")
		}
		if dbhelper.IsCheckViolation(err) {
			return models.Asset{}, apperror.NewConflict(apperror.InvalidTransition, "status and assignee are inconsistent")
		}
		if dbhelper.IsForeignKeyViolation(err) {
			return models.Asset{}, apperror.NewValidation(apperror.InvalidAssignee, "assignee does not exist")
		}
		return models.Asset{}, errors.Wrap(err, "failed to save asset transition")
	}
	return updated, nil
}

func (r *PostgresAssetRepository) DeleteAssetByID(ctx context.Context, tx *sqlx.Tx, id int64) error {
	res, err := tx.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("asset")
	}
	return nil
}

func (r *PostgresAssetRepository) InsertHistory(ctx context.Context, tx *sqlx.Tx, entry models.AssetHistoryEntry) error {
	metadata := entry.Metadata
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO asset_history (asset_id, action, details, performed_by_user_id, from_user_id, to_user_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.AssetID, entry.Action, entry.Details, entry.PerformedByUserID, entry.FromUserID, entry.ToUserID, metadata)
	if err != nil {
		return fmt.Errorf("failed to insert asset history: %w", err)
	}
	return nil
}

func (r *PostgresAssetRepository) ListAssets(ctx context.Context, filter AssetFilter) ([]models.AssetResponse, error) {
	var assignedTo, expiringDays, limit interface{}
	if filter.AssignedTo != nil {
		assignedTo = *filter.AssignedTo
	}
	if filter.WarrantyExpiringDays != nil {
		expiringDays = *filter.WarrantyExpiringDays
	}
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	statuses := filter.Statuses
	if statuses == nil {
		statuses = []string{}
	}

	args := []interface{}{
		filter.Category,
		pq.Array(statuses),
		assignedTo,
		filter.Department,
		filter.PurchaseDateFrom,
		filter.PurchaseDateTo,
		expiringDays,
		filter.Search,
		limit,
		filter.Offset,
	}

	query := assetResponseSelect + `
		WHERE ($1 = '' OR a.category = $1)
		AND (cardinality($2::text[]) = 0 OR a.status = ANY($2))
		AND ($3::bigint IS NULL OR a.assigned_to_user_id = $3)
		AND ($4 = '' OR u.department = $4)
		AND ($5::date IS NULL OR a.purchase_date >= $5)
		AND ($6::date IS NULL OR a.purchase_date <= $6)
		AND ($7::int IS NULL OR (a.warranty_expiration >= CURRENT_DATE AND a.warranty_expiration <= CURRENT_DATE + $7::int))
		AND ($8 = '' OR a.name ILIKE '%' || $8 || '%' OR a.serial_number ILIKE '%' || $8 || '%' OR a.description ILIKE '%' || $8 || '%')
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $9 OFFSET $10`

	assets := []models.AssetResponse{}
	if err := r.DB.SelectContext(ctx, &assets, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}
	return assets, nil
}

func (r *PostgresAssetRepository) GetAssetHistory(ctx context.Context, assetID int64) ([]models.AssetHistoryResponse, error) {
	history := []models.AssetHistoryResponse{}
	err := r.DB.SelectContext(ctx, &history, `
		SELECT h.id, h.asset_id, h.action, h.details, h.performed_by_user_id, h.from_user_id, h.to_user_id,
			h.metadata, h.created_at,
			p.username AS performed_by, f.username AS from_user, t.username AS to_user
		FROM asset_history h
		LEFT JOIN users p ON p.id = h.performed_by_user_id
		LEFT JOIN users f ON f.id = h.from_user_id
		LEFT JOIN users t ON t.id = h.to_user_id
		WHERE h.asset_id = $1
		ORDER BY h.created_at DESC, h.id DESC`, assetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch asset history")
	}
	return history, nil
}
