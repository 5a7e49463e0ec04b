package licenseservice

import (
	"context"
	"database/sql"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type LicenseRepository interface {
	GetLicenseByID(ctx context.Context, id int64) (models.LicenseResponse, error)
	GetLicenseForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (models.License, error)
	InsertLicense(ctx context.Context, license models.License) (models.License, error)
	UpdateLicense(ctx context.Context, tx *sqlx.Tx, license models.License) (models.License, error)
	DeleteLicenseByID(ctx context.Context, id int64) error
	ListLicenses(ctx context.Context, filter LicenseFilter) ([]models.LicenseResponse, error)
	ListExpiring(ctx context.Context, days int) ([]models.LicenseResponse, error)
}

type PostgresLicenseRepository struct {
	DB *sqlx.DB
}

func NewLicenseRepository(db *sqlx.DB) LicenseRepository {
	return &PostgresLicenseRepository{DB: db}
}

const licenseColumns = `id, asset_id, software_name, license_key, vendor, purchase_date, expiration_date,
	cost, seats, status, created_at, updated_at`

const licenseResponseColumns = `l.id, l.asset_id, l.software_name, l.license_key, l.vendor, l.purchase_date,
	l.expiration_date, l.cost, l.seats, l.status, l.created_at, l.updated_at,
	a.name AS asset_name, a.serial_number AS asset_serial_number`

const licenseFrom = `
	FROM licenses l
	LEFT JOIN assets a ON a.id = l.asset_id`

// writeError maps constraint failures of inserts and updates.
func writeError(err error, what string) error {
	switch {
	case dbhelper.IsForeignKeyViolation(err):
		return apperror.NewNotFound("asset")
	case dbhelper.IsCheckViolation(err):
		return apperror.NewValidation(apperror.InvalidField, "license values violate a constraint: "+dbhelper.ViolatedConstraint(err))
	}
	return errors.Wrap(err, what)
}

func (r *PostgresLicenseRepository) GetLicenseByID(ctx context.Context, id int64) (models.LicenseResponse, error) {
	var license models.LicenseResponse
	err := r.DB.GetContext(ctx, &license, `SELECT `+licenseResponseColumns+licenseFrom+` WHERE l.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LicenseResponse{}, apperror.NewNotFound("license")
		}
		return models.LicenseResponse{}, errors.Wrap(err, "failed to fetch license")
	}
	return license, nil
}

func (r *PostgresLicenseRepository) GetLicenseForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (models.License, error) {
	var license models.License
	err := tx.GetContext(ctx, &license, `SELECT `+licenseColumns+` FROM licenses WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.License{}, apperror.NewNotFound("license")
		}
		return models.License{}, errors.Wrap(err, "failed to lock license")
	}
	return license, nil
}

func (r *PostgresLicenseRepository) InsertLicense(ctx context.Context, license models.License) (models.License, error) {
	var created models.License
	err := r.DB.GetContext(ctx, &created, `
		INSERT INTO licenses (
			asset_id, software_name, license_key, vendor, purchase_date,
			expiration_date, cost, seats, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+licenseColumns,
		license.AssetID, license.SoftwareName, license.LicenseKey, license.Vendor, license.PurchaseDate,
		license.ExpirationDate, license.Cost, license.Seats, license.Status)
	if err != nil {
		return models.License{}, writeError(err, "failed to insert license")
	}
	return created, nil
}

func (r *PostgresLicenseRepository) UpdateLicense(ctx context.Context, tx *sqlx.Tx, license models.License) (models.License, error) {
	var updated models.License
	err := tx.GetContext(ctx, &updated, `
		UPDATE licenses
		SET asset_id = $1, software_name = $2, license_key = $3, vendor = $4, purchase_date = $5,
			expiration_date = $6, cost = $7, seats = $8, status = $9, updated_at = now()
		WHERE id = $10
		RETURNING `+licenseColumns,
		license.AssetID, license.SoftwareName, license.LicenseKey, license.Vendor, license.PurchaseDate,
		license.ExpirationDate, license.Cost, license.Seats, license.Status, license.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.License{}, apperror.NewNotFound("license")
		}
		return models.License{}, writeError(err, "failed to update license")
	}
	return updated, nil
}

func (r *PostgresLicenseRepository) DeleteLicenseByID(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete license")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("license")
	}
	return nil
}

func (r *PostgresLicenseRepository) ListLicenses(ctx context.Context, filter LicenseFilter) ([]models.LicenseResponse, error) {
	var assetID, limit interface{}
	if filter.AssetID != nil {
		assetID = *filter.AssetID
	}
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	licenses := []models.LicenseResponse{}
	err := r.DB.SelectContext(ctx, &licenses, `SELECT `+licenseResponseColumns+licenseFrom+`
		WHERE ($1 = '' OR l.status = $1)
		AND ($2::bigint IS NULL OR l.asset_id = $2)
		AND ($3 = '' OR l.software_name ILIKE '%' || $3 || '%')
		ORDER BY l.software_name, l.id
		LIMIT $4 OFFSET $5`,
		filter.Status, assetID, filter.SoftwareName, limit, filter.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list licenses")
	}
	return licenses, nil
}

// ListExpiring returns active licenses expiring between today and today+days,
// soonest first.
func (r *PostgresLicenseRepository) ListExpiring(ctx context.Context, days int) ([]models.LicenseResponse, error) {
	licenses := []models.LicenseResponse{}
	err := r.DB.SelectContext(ctx, &licenses, `SELECT `+licenseResponseColumns+`,
			(l.expiration_date - CURRENT_DATE) AS days_until_expiry`+licenseFrom+`
		WHERE l.status = 'Active'
		AND l.expiration_date IS NOT NULL
		AND l.expiration_date >= CURRENT_DATE
		AND l.expiration_date <= CURRENT_DATE + $1::int
		ORDER BY l.expiration_date, l.id`, days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expiring licenses")
	}
	return licenses, nil
}
