package dashboardservice

import (
	"context"
	"math"
	"sort"
	"time"

	"assetflow/apperror"
	"assetflow/models"
	"assetflow/policy"
	"assetflow/providers"
	"assetflow/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWarrantyDays  = 30
	maxWarrantyDays      = 365
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
	timelineMonths       = 12
)

type DashboardService interface {
	GetStats(ctx context.Context, actor models.Identity) (models.DashboardStats, error)
	AssetsByCategory(ctx context.Context, actor models.Identity) ([]models.GroupCount, error)
	AssetsByDepartment(ctx context.Context, actor models.Identity) ([]models.GroupCount, error)
	AssetsByStatus(ctx context.Context, actor models.Identity) ([]models.GroupCount, error)
	WarrantyExpiring(ctx context.Context, actor models.Identity, days int) ([]models.WarrantyExpiringAsset, error)
	RecentActivities(ctx context.Context, actor models.Identity, limit int) ([]models.RecentActivity, error)
	MaintenanceStats(ctx context.Context, actor models.Identity) (models.MaintenanceBreakdown, error)
	AssetValueSummary(ctx context.Context, actor models.Identity) (models.AssetValueSummary, error)
	AssetsTimeline(ctx context.Context, actor models.Identity) ([]models.MonthlyCount, error)
	Warm(ctx context.Context) error
}

type dashboardService struct {
	repo   DashboardRepository
	cache  *Cache
	logger providers.ZapLoggerProvider
	now    func() time.Time
}

// NewDashboardService builds the service. A nil cache computes every
// aggregate on demand.
func NewDashboardService(repo DashboardRepository, cache *Cache, logger providers.ZapLoggerProvider) DashboardService {
	return &dashboardService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func authorize(actor models.Identity, action policy.Action) error {
	if d := policy.Can(actor, action, nil); !d.Allowed {
		return apperror.NewAuth(apperror.Forbidden, d.Reason)
	}
	return nil
}

func (s *dashboardService) GetStats(ctx context.Context, actor models.Identity) (models.DashboardStats, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return models.DashboardStats{}, err
	}
	return cached(ctx, s.cache, "stats", s.repo.GetStats)
}

func (s *dashboardService) AssetsByCategory(ctx context.Context, actor models.Identity) ([]models.GroupCount, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return nil, err
	}
	return cached(ctx, s.cache, "by-category", s.repo.CountAssetsByCategory)
}

func (s *dashboardService) AssetsByDepartment(ctx context.Context, actor models.Identity) ([]models.GroupCount, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return nil, err
	}
	return cached(ctx, s.cache, "by-department", s.repo.CountAssetsByDepartment)
}

func (s *dashboardService) AssetsByStatus(ctx context.Context, actor models.Identity) ([]models.GroupCount, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return nil, err
	}
	return cached(ctx, s.cache, "by-status", s.repo.CountAssetsByStatus)
}

func (s *dashboardService) WarrantyExpiring(ctx context.Context, actor models.Identity, days int) ([]models.WarrantyExpiringAsset, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultWarrantyDays
	}
	if days < 0 || days > maxWarrantyDays {
		return nil, apperror.NewFieldValidation("invalid days", map[string]string{"days": "must be between 1 and 365"})
	}
	return cached(ctx, s.cache, daysKey("warranty-expiring", days), func(ctx context.Context) ([]models.WarrantyExpiringAsset, error) {
		return s.repo.ListWarrantyExpiring(ctx, days)
	})
}

// RecentActivities reads the history log directly so pollers see new
// entries immediately.
func (s *dashboardService) RecentActivities(ctx context.Context, actor models.Identity, limit int) ([]models.RecentActivity, error) {
	if err := authorize(actor, policy.ViewActivityLog); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	return s.repo.ListRecentActivities(ctx, limit)
}

func (s *dashboardService) MaintenanceStats(ctx context.Context, actor models.Identity) (models.MaintenanceBreakdown, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return models.MaintenanceBreakdown{}, err
	}
	return cached(ctx, s.cache, "maintenance-stats", s.repo.GetMaintenanceBreakdown)
}

func (s *dashboardService) AssetValueSummary(ctx context.Context, actor models.Identity) (models.AssetValueSummary, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return models.AssetValueSummary{}, err
	}
	return cached(ctx, s.cache, "asset-value-summary", s.computeValueSummary)
}

func (s *dashboardService) computeValueSummary(ctx context.Context) (models.AssetValueSummary, error) {
	assets, err := s.repo.ListValuedAssets(ctx)
	if err != nil {
		return models.AssetValueSummary{}, err
	}
	now := s.now()
	byCategory := map[string]*models.CategoryValue{}
	summary := models.AssetValueSummary{ByCategory: []models.CategoryValue{}}
	for _, a := range assets {
		price, purchased := a.PurchasePrice, a.PurchaseDate
		dep, ok := utils.Depreciate(&price, &purchased, now)
		if !ok {
			continue
		}
		cv, exists := byCategory[a.Category]
		if !exists {
			cv = &models.CategoryValue{Category: a.Category}
			byCategory[a.Category] = cv
		}
		cv.Count++
		cv.PurchaseValue += dep.PurchasePrice
		cv.CurrentValue += dep.CurrentValue
		cv.TotalDepreciation += dep.TotalDepreciation
	}
	for _, cv := range byCategory {
		cv.PurchaseValue = round2(cv.PurchaseValue)
		cv.CurrentValue = round2(cv.CurrentValue)
		cv.TotalDepreciation = round2(cv.TotalDepreciation)
		summary.TotalPurchaseValue += cv.PurchaseValue
		summary.TotalCurrentValue += cv.CurrentValue
		summary.TotalDepreciation += cv.TotalDepreciation
		summary.ByCategory = append(summary.ByCategory, *cv)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].PurchaseValue > summary.ByCategory[j].PurchaseValue
	})
	summary.TotalPurchaseValue = round2(summary.TotalPurchaseValue)
	summary.TotalCurrentValue = round2(summary.TotalCurrentValue)
	summary.TotalDepreciation = round2(summary.TotalDepreciation)
	return summary, nil
}

func (s *dashboardService) AssetsTimeline(ctx context.Context, actor models.Identity) ([]models.MonthlyCount, error) {
	if err := authorize(actor, policy.ViewDashboard); err != nil {
		return nil, err
	}
	return cached(ctx, s.cache, "assets-timeline", s.computeTimeline)
}

// computeTimeline returns one entry per month, oldest first, including
// months without acquisitions.
func (s *dashboardService) computeTimeline(ctx context.Context) ([]models.MonthlyCount, error) {
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(timelineMonths - 1), 0)
	counts, err := s.repo.CountAcquisitionsSince(ctx, start)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]int, len(counts))
	for _, c := range counts {
		byMonth[c.Month] = c.Count
	}
	timeline := make([]models.MonthlyCount, 0, timelineMonths)
	for i := 0; i < timelineMonths; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		timeline = append(timeline, models.MonthlyCount{Month: month, Count: byMonth[month]})
	}
	return timeline, nil
}

// Warm recomputes the cached aggregates so the first dashboard load after a
// change is served from Redis.
func (s *dashboardService) Warm(ctx context.Context) error {
	steps := []func(context.Context) error{
		warm(s.cache, "stats", s.repo.GetStats),
		warm(s.cache, "by-category", s.repo.CountAssetsByCategory),
		warm(s.cache, "by-department", s.repo.CountAssetsByDepartment),
		warm(s.cache, "by-status", s.repo.CountAssetsByStatus),
		warm(s.cache, "maintenance-stats", s.repo.GetMaintenanceBreakdown),
		warm(s.cache, "asset-value-summary", s.computeValueSummary),
		warm(s.cache, "assets-timeline", s.computeTimeline),
		warm(s.cache, daysKey("warranty-expiring", DefaultWarrantyDays), func(ctx context.Context) ([]models.WarrantyExpiringAsset, error) {
			return s.repo.ListWarrantyExpiring(ctx, DefaultWarrantyDays)
		}),
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, step := range steps {
		g.Go(func() error { return step(ctx) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.GetLogger().Debug("dashboard cache warmed", zap.Int("aggregates", len(steps)))
	return nil
}

func warm[T any](c *Cache, name string, load func(context.Context) (T, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := cached(ctx, c, name, load)
		return err
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
