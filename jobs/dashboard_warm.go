package jobs

import (
	"context"
	"time"

	"assetflow/providers"
	metricsprovider "assetflow/providers/metricsProvider"
	dashboardservice "assetflow/services/dashboard"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DashboardWarmJob recomputes the cached dashboard aggregates so the first
// reader after an invalidation does not pay for every query.
type DashboardWarmJob struct {
	Dashboard dashboardservice.DashboardService
	Logger    providers.ZapLoggerProvider
	Metrics   *metricsprovider.Metrics
	clock     func() time.Time
}

func NewDashboardWarmJob(dashboard dashboardservice.DashboardService, logger providers.ZapLoggerProvider, metrics *metricsprovider.Metrics) *DashboardWarmJob {
	return &DashboardWarmJob{
		Dashboard: dashboard,
		Logger:    logger,
		Metrics:   metrics,
		clock:     time.Now,
	}
}

func (j *DashboardWarmJob) Handle(ctx context.Context, _ *asynq.Task) error {
	start := j.clock()
	err := j.Dashboard.Warm(ctx)
	j.Metrics.ObserveJob(TaskDashboardWarm, err)
	if err != nil {
		j.Logger.GetLogger().Warn("dashboard warm-up failed", zap.Error(err))
		return err
	}
	j.Logger.GetLogger().Info("dashboard warm-up complete", zap.Duration("took", j.clock().Sub(start)))
	return nil
}
