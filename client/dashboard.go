package client

import (
	"context"
	"net/url"
	"strconv"

	"assetflow/models"
	"assetflow/policy"
)

func dashboardGet[T any](ctx context.Context, s *Session, action policy.Action, name string, query url.Values) (T, error) {
	var out T
	if err := s.precheck(action, nil); err != nil {
		return out, err
	}
	err := s.getJSON(ctx, "/dashboard/"+name, query, &out)
	return out, err
}

func (s *Session) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return dashboardGet[models.DashboardStats](ctx, s, policy.ViewDashboard, "stats", nil)
}

func (s *Session) AssetsByCategory(ctx context.Context) ([]models.GroupCount, error) {
	return dashboardGet[[]models.GroupCount](ctx, s, policy.ViewDashboard, "assets-by-category", nil)
}

func (s *Session) AssetsByDepartment(ctx context.Context) ([]models.GroupCount, error) {
	return dashboardGet[[]models.GroupCount](ctx, s, policy.ViewDashboard, "assets-by-department", nil)
}

func (s *Session) AssetsByStatus(ctx context.Context) ([]models.GroupCount, error) {
	return dashboardGet[[]models.GroupCount](ctx, s, policy.ViewDashboard, "assets-by-status", nil)
}

// WarrantyExpiring lists assets whose warranty ends within days. Zero uses
// the server default.
func (s *Session) WarrantyExpiring(ctx context.Context, days int) ([]models.WarrantyExpiringAsset, error) {
	var query url.Values
	if days > 0 {
		query = url.Values{"days": {strconv.Itoa(days)}}
	}
	return dashboardGet[[]models.WarrantyExpiringAsset](ctx, s, policy.ViewDashboard, "warranty-expiring", query)
}

func (s *Session) RecentActivities(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return dashboardGet[[]models.RecentActivity](ctx, s, policy.ViewActivityLog, "recent-activities", query)
}

func (s *Session) MaintenanceStats(ctx context.Context) (models.MaintenanceBreakdown, error) {
	return dashboardGet[models.MaintenanceBreakdown](ctx, s, policy.ViewDashboard, "maintenance-stats", nil)
}

func (s *Session) AssetValueSummary(ctx context.Context) (models.AssetValueSummary, error) {
	return dashboardGet[models.AssetValueSummary](ctx, s, policy.ViewDashboard, "asset-value-summary", nil)
}

func (s *Session) AssetsTimeline(ctx context.Context) ([]models.MonthlyCount, error) {
	return dashboardGet[[]models.MonthlyCount](ctx, s, policy.ViewDashboard, "assets-timeline", nil)
}
