package dashboardservice

import (
	"context"
	"time"

	"assetflow/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type DashboardRepository interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
	CountAssetsByCategory(ctx context.Context) ([]models.GroupCount, error)
	CountAssetsByDepartment(ctx context.Context) ([]models.GroupCount, error)
	CountAssetsByStatus(ctx context.Context) ([]models.GroupCount, error)
	ListWarrantyExpiring(ctx context.Context, days int) ([]models.WarrantyExpiringAsset, error)
	ListRecentActivities(ctx context.Context, limit int) ([]models.RecentActivity, error)
	GetMaintenanceBreakdown(ctx context.Context) (models.MaintenanceBreakdown, error)
	ListValuedAssets(ctx context.Context) ([]ValuedAsset, error)
	CountAcquisitionsSince(ctx context.Context, since time.Time) ([]models.MonthlyCount, error)
}

// ValuedAsset is the slice of an asset the value summary needs.
type ValuedAsset struct {
	Category      string    `db:"category"`
	PurchasePrice float64   `db:"purchase_price"`
	PurchaseDate  time.Time `db:"purchase_date"`
}

type PostgresDashboardRepository struct {
	DB *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) DashboardRepository {
	return &PostgresDashboardRepository{DB: db}
}

func (r *PostgresDashboardRepository) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := r.DB.GetContext(ctx, &stats.Assets, `
		SELECT
			count(*) AS total,
			count(*) FILTER (WHERE status = 'Available') AS available,
			count(*) FILTER (WHERE status = 'Assigned') AS assigned,
			count(*) FILTER (WHERE status = 'Under Maintenance') AS under_maintenance,
			count(*) FILTER (WHERE status = 'In Repair') AS in_repair,
			count(*) FILTER (WHERE status = 'Retired') AS retired,
			COALESCE(sum(purchase_price), 0) AS total_value
		FROM assets`)
	if err != nil {
		return models.DashboardStats{}, errors.Wrap(err, "failed to count assets")
	}
	err = r.DB.GetContext(ctx, &stats.Maintenance, `
		SELECT
			count(*) AS total,
			count(*) FILTER (WHERE status NOT IN ('Resolved', 'Closed')) AS open,
			count(*) FILTER (WHERE status IN ('Resolved', 'Closed')) AS resolved
		FROM maintenance_tickets`)
	if err != nil {
		return models.DashboardStats{}, errors.Wrap(err, "failed to count tickets")
	}
	err = r.DB.GetContext(ctx, &stats.Users, `
		SELECT count(*) AS total, count(*) FILTER (WHERE is_active) AS active FROM users`)
	if err != nil {
		return models.DashboardStats{}, errors.Wrap(err, "failed to count users")
	}
	err = r.DB.GetContext(ctx, &stats.Licenses, `
		SELECT
			count(*) AS total,
			count(*) FILTER (WHERE status = 'Active') AS active,
			count(*) FILTER (WHERE status = 'Expired') AS expired
		FROM licenses`)
	if err != nil {
		return models.DashboardStats{}, errors.Wrap(err, "failed to count licenses")
	}
	return stats, nil
}

func (r *PostgresDashboardRepository) countGroups(ctx context.Context, query, what string) ([]models.GroupCount, error) {
	groups := []models.GroupCount{}
	if err := r.DB.SelectContext(ctx, &groups, query); err != nil {
		return nil, errors.Wrapf(err, "failed to count assets by %s", what)
	}
	return groups, nil
}

func (r *PostgresDashboardRepository) CountAssetsByCategory(ctx context.Context) ([]models.GroupCount, error) {
	return r.countGroups(ctx, `
		SELECT category AS label, count(*) AS count
		FROM assets
		GROUP BY category
		ORDER BY count DESC, label`, "category")
}

func (r *PostgresDashboardRepository) CountAssetsByDepartment(ctx context.Context) ([]models.GroupCount, error) {
	return r.countGroups(ctx, `
		SELECT COALESCE(NULLIF(u.department, ''), 'Unassigned') AS label, count(*) AS count
		FROM assets a
		LEFT JOIN users u ON u.id = a.assigned_to_user_id
		GROUP BY 1
		ORDER BY count DESC, label`, "department")
}

func (r *PostgresDashboardRepository) CountAssetsByStatus(ctx context.Context) ([]models.GroupCount, error) {
	return r.countGroups(ctx, `
		SELECT status AS label, count(*) AS count
		FROM assets
		GROUP BY status
		ORDER BY count DESC, label`, "status")
}

func (r *PostgresDashboardRepository) ListWarrantyExpiring(ctx context.Context, days int) ([]models.WarrantyExpiringAsset, error) {
	assets := []models.WarrantyExpiringAsset{}
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT a.id, a.name, a.serial_number, a.category, a.warranty_expiration,
			(a.warranty_expiration - CURRENT_DATE) AS days_until_expiry,
			u.username AS assigned_to_username
		FROM assets a
		LEFT JOIN users u ON u.id = a.assigned_to_user_id
		WHERE a.warranty_expiration IS NOT NULL
		AND a.warranty_expiration BETWEEN CURRENT_DATE AND CURRENT_DATE + $1::int
		AND a.status <> 'Retired'
		ORDER BY a.warranty_expiration, a.id`, days)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expiring warranties")
	}
	return assets, nil
}

func (r *PostgresDashboardRepository) ListRecentActivities(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	activities := []models.RecentActivity{}
	err := r.DB.SelectContext(ctx, &activities, `
		SELECT h.id, h.asset_id, h.action, h.details, h.performed_by_user_id, h.from_user_id, h.to_user_id,
			h.metadata, h.created_at,
			a.name AS asset_name, u.username AS performed_by_username
		FROM asset_history h
		LEFT JOIN assets a ON a.id = h.asset_id
		LEFT JOIN users u ON u.id = h.performed_by_user_id
		ORDER BY h.created_at DESC, h.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}
	return activities, nil
}

func (r *PostgresDashboardRepository) GetMaintenanceBreakdown(ctx context.Context) (models.MaintenanceBreakdown, error) {
	breakdown := models.MaintenanceBreakdown{ByStatus: []models.GroupCount{}, ByPriority: []models.GroupCount{}}
	err := r.DB.SelectContext(ctx, &breakdown.ByStatus, `
		SELECT status AS label, count(*) AS count FROM maintenance_tickets GROUP BY status ORDER BY label`)
	if err != nil {
		return models.MaintenanceBreakdown{}, errors.Wrap(err, "failed to count tickets by status")
	}
	err = r.DB.SelectContext(ctx, &breakdown.ByPriority, `
		SELECT priority AS label, count(*) AS count FROM maintenance_tickets GROUP BY priority ORDER BY label`)
	if err != nil {
		return models.MaintenanceBreakdown{}, errors.Wrap(err, "failed to count tickets by priority")
	}

	var summary struct {
		AvgHours float64 `db:"avg_hours"`
		Recent   int     `db:"recent"`
	}
	err = r.DB.GetContext(ctx, &summary, `
		SELECT
			COALESCE(avg(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 3600)
				FILTER (WHERE resolved_at IS NOT NULL), 0) AS avg_hours,
			count(*) FILTER (WHERE created_at >= now() - interval '30 days') AS recent
		FROM maintenance_tickets`)
	if err != nil {
		return models.MaintenanceBreakdown{}, errors.Wrap(err, "failed to summarize tickets")
	}
	breakdown.AvgResolutionHours = summary.AvgHours
	breakdown.RecentTickets30Days = summary.Recent
	return breakdown, nil
}

func (r *PostgresDashboardRepository) ListValuedAssets(ctx context.Context) ([]ValuedAsset, error) {
	assets := []ValuedAsset{}
	err := r.DB.SelectContext(ctx, &assets, `
		SELECT category, purchase_price, purchase_date
		FROM assets
		WHERE purchase_price IS NOT NULL AND purchase_date IS NOT NULL
		ORDER BY category`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list valued assets")
	}
	return assets, nil
}

// CountAcquisitionsSince groups assets by the month they were purchased,
// falling back to the record's creation date.
func (r *PostgresDashboardRepository) CountAcquisitionsSince(ctx context.Context, since time.Time) ([]models.MonthlyCount, error) {
	months := []models.MonthlyCount{}
	err := r.DB.SelectContext(ctx, &months, `
		SELECT to_char(date_trunc('month', COALESCE(purchase_date::timestamptz, created_at)), 'YYYY-MM') AS month,
			count(*) AS count
		FROM assets
		WHERE COALESCE(purchase_date::timestamptz, created_at) >= $1
		GROUP BY 1
		ORDER BY 1`, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count acquisitions")
	}
	return months, nil
}
