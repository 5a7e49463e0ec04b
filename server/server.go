package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"assetflow/lifecycle"
	"assetflow/providers"
	configprovider "assetflow/providers/configProvider"
	"assetflow/providers/databaseProvider"
	"assetflow/providers/loggerProvider"
	metricsprovider "assetflow/providers/metricsProvider"
	"assetflow/providers/middlewareprovider"
	redisprovider "assetflow/providers/redisProvider"
	tokenprovider "assetflow/providers/tokenProvider"
	assetservice "assetflow/services/asset"
	dashboardservice "assetflow/services/dashboard"
	licenseservice "assetflow/services/license"
	maintenanceservice "assetflow/services/maintenance"
	userservice "assetflow/services/user"

	"go.uber.org/zap"
)

type Server struct {
	Config           providers.AppConfig
	DB               providers.DBProvider
	Redis            providers.RedisProvider
	Logger           providers.ZapLoggerProvider
	Metrics          *metricsprovider.Metrics
	Middleware       providers.AuthMiddlewareService
	UserHandler      *userservice.UserHandler
	AssetHandler     *assetservice.AssetHandler
	TicketHandler    *maintenanceservice.TicketHandler
	DashboardHandler *dashboardservice.DashboardHandler
	LicenseHandler   *licenseservice.LicenseHandler
	UserService      userservice.UserService
	httpServer       *http.Server
}

func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("config error: %v", err)
	}
	conf := cfg.Get()

	logger := loggerProvider.NewLogProvider(conf.IsProduction())
	logger.InitLogger()
	zlog := logger.GetLogger()

	db, err := databaseProvider.NewDBProvider(cfg.GetDatabaseString(), conf.MigrationsPath, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}

	redisClient := redisprovider.NewRedisProvider(cfg.GetRedisAddr())
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		zlog.Warn("redis unavailable, dashboard aggregates will be computed on every request", zap.Error(err))
	}
	cancel()

	linkage, err := lifecycle.LinkageFor(conf.TicketAssetLinkage)
	if err != nil {
		zlog.Fatal("invalid ticket asset linkage", zap.Error(err))
	}

	metrics := metricsprovider.NewMetrics()
	tokens := tokenprovider.NewJWTService(conf.JWTSecret, conf.JWTRefreshSecret, conf.AccessTokenTTL, conf.RefreshTokenTTL)

	// repositories
	userRepo := userservice.NewUserRepository(db.DB(), logger)
	assetRepo := assetservice.NewAssetRepository(db.DB())
	ticketRepo := maintenanceservice.NewTicketRepository(db.DB())
	dashboardRepo := dashboardservice.NewDashboardRepository(db.DB())
	licenseRepo := licenseservice.NewLicenseRepository(db.DB())

	dashboardCache := dashboardservice.NewCache(redisClient, conf.DashboardCacheTTL, metrics, logger)
	middleware := middlewareprovider.NewAuthMiddlewareService(userRepo, tokens, logger)

	// services
	userService := userservice.NewUserService(userRepo, db.DB(), tokens, logger, dashboardCache)
	assetService := assetservice.NewAssetService(assetRepo, userRepo, db.DB(), logger, metrics, dashboardCache)
	ticketService := maintenanceservice.NewTicketService(ticketRepo, assetRepo, userRepo, db.DB(), maintenanceservice.Options{
		Linkage:        linkage,
		Store:          maintenanceservice.DiskStore{Dir: conf.UploadDir},
		MaxUploadBytes: conf.MaxUploadBytes,
	}, logger, metrics, dashboardCache)
	dashboardService := dashboardservice.NewDashboardService(dashboardRepo, dashboardCache, logger)
	licenseService := licenseservice.NewLicenseService(licenseRepo, db.DB(), logger, dashboardCache)

	srv := &Server{
		Config:           conf,
		DB:               db,
		Redis:            redisClient,
		Logger:           logger,
		Metrics:          metrics,
		Middleware:       middleware,
		UserHandler:      userservice.NewUserHandler(userService, middleware, logger),
		AssetHandler:     assetservice.NewAssetHandler(assetService, middleware, logger),
		TicketHandler:    maintenanceservice.NewTicketHandler(ticketService, middleware, logger, conf.MaxUploadBytes),
		DashboardHandler: dashboardservice.NewDashboardHandler(dashboardService, middleware, logger),
		LicenseHandler:   licenseservice.NewLicenseHandler(licenseService, middleware, logger),
		UserService:      userService,
	}
	if err := srv.bootstrapAdmin(context.Background()); err != nil {
		zlog.Fatal("failed to create bootstrap admin", zap.Error(err))
	}
	return srv
}

func (s *Server) bootstrapAdmin(ctx context.Context) error {
	if s.Config.BootstrapAdminUsername == "" {
		return nil
	}
	if s.Config.BootstrapAdminPassword == "" {
		return errors.New("BOOTSTRAP_ADMIN_PASSWORD is required with BOOTSTRAP_ADMIN_USERNAME")
	}
	return s.UserService.EnsureAdmin(ctx, s.Config.BootstrapAdminUsername, s.Config.BootstrapAdminEmail, s.Config.BootstrapAdminPassword)
}

func (s *Server) Start() {
	addr := ":" + s.Config.ServerPort

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	logger := s.Logger.GetLogger()
	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			logger.Error("error shutting down server", zap.Error(err))
		}
	}
	if err := s.Redis.Close(); err != nil {
		logger.Error("error closing redis", zap.Error(err))
	}
	if err := s.DB.Close(); err != nil {
		logger.Error("error closing DB", zap.Error(err))
	}
	logger.Info("server shutdown complete")
	s.Logger.SyncLogger()
}
