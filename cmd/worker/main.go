package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"assetflow/jobs"
	configprovider "assetflow/providers/configProvider"
	"assetflow/providers/databaseProvider"
	"assetflow/providers/loggerProvider"
	metricsprovider "assetflow/providers/metricsProvider"
	redisprovider "assetflow/providers/redisProvider"
	dashboardservice "assetflow/services/dashboard"
	licenseservice "assetflow/services/license"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config error: %v", err)
	}
	conf := cfg.Get()

	logger := loggerProvider.NewLogProvider(conf.IsProduction())
	logger.InitLogger()
	defer logger.SyncLogger()
	zlog := logger.GetLogger()

	db, err := databaseProvider.NewDBProvider(cfg.GetDatabaseString(), conf.MigrationsPath, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zlog.Warn("db close", zap.Error(err))
		}
	}()

	redisClient := redisprovider.NewRedisProvider(cfg.GetRedisAddr())
	defer func() {
		if err := redisClient.Close(); err != nil {
			zlog.Warn("redis close", zap.Error(err))
		}
	}()

	metrics := metricsprovider.NewMetrics()
	dashboardRepo := dashboardservice.NewDashboardRepository(db.DB())
	dashboardCache := dashboardservice.NewCache(redisClient, conf.DashboardCacheTTL, metrics, logger)
	dashboardService := dashboardservice.NewDashboardService(dashboardRepo, dashboardCache, logger)

	warmJob := jobs.NewDashboardWarmJob(dashboardService, logger, metrics)
	scanJob := jobs.NewWarrantyScanJob(dashboardRepo, logger, metrics)
	scanJob.Licenses = licenseservice.NewLicenseRepository(db.DB())

	scanTask, err := jobs.NewWarrantyScanTask(conf.WarrantyScanDays)
	if err != nil {
		zlog.Fatal("build warranty scan task", zap.Error(err))
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   asynq.RedisClientOpt{Addr: conf.RedisAddr},
		Logger:      logger,
		Concurrency: conf.WorkerConcurrency,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarm, Handler: warmJob.Handle},
			{Type: jobs.TaskAssetWarrantyScan, Handler: scanJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: conf.DashboardWarmSchedule, Task: jobs.NewDashboardWarmTask(), Options: []asynq.Option{asynq.MaxRetry(1)}},
			{Spec: conf.WarrantyScanSchedule, Task: scanTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		zlog.Fatal("init worker", zap.Error(err))
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zlog.Error("worker run", zap.Error(err))
	}
	zlog.Info("worker stopped")
}
