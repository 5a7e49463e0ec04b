package server

import (
	"context"
	"net/http"
	"time"

	"assetflow/policy"
	"assetflow/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()
	logger := srv.Logger.GetLogger()
	can := srv.Middleware.RequireCapability

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(srv.Metrics.Middleware)
	r.Use(securityHeaders(srv.Config.IsProduction()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   srv.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(rateLimit(srv.Config.RateLimitPerMinute))

	r.Get("/health", srv.health)
	r.Handle("/metrics", srv.Metrics.Handler())
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(srv.Config.UploadDir)))))

	r.Route("/api/v1", func(api chi.Router) {
		//public routes
		api.Group(func(public chi.Router) {
			public.Use(rateLimit(srv.Config.LoginRateLimitPerMinute))
			public.Post("/auth/login", srv.UserHandler.Login)
			public.Post("/auth/register", srv.UserHandler.Register)
			public.Post("/auth/refresh", srv.UserHandler.Refresh)
		})

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Get("/auth/me", srv.UserHandler.Me)
			protected.Put("/auth/me", srv.UserHandler.UpdateMe)
			protected.Post("/auth/change-password", srv.UserHandler.ChangePassword)

			protected.Route("/assets", func(assets chi.Router) {
				assets.With(can(policy.ViewAsset)).Get("/", srv.AssetHandler.ListAssets)
				assets.With(can(policy.CreateAsset)).Post("/", srv.AssetHandler.CreateAsset)
				assets.With(can(policy.ExportAssets)).Get("/export", srv.AssetHandler.ExportAssets)

				assets.Route("/{id}", func(asset chi.Router) {
					asset.With(can(policy.ViewAsset)).Get("/", srv.AssetHandler.GetAsset)
					asset.With(can(policy.EditAsset)).Put("/", srv.AssetHandler.UpdateAsset)
					asset.With(can(policy.DeleteAsset)).Delete("/", srv.AssetHandler.DeleteAsset)
					asset.With(can(policy.AssignAsset)).Post("/assign", srv.AssetHandler.AssignAsset)
					asset.With(can(policy.ReleaseAsset)).Post("/release", srv.AssetHandler.ReleaseAsset)
					asset.With(can(policy.RetireAsset)).Post("/retire", srv.AssetHandler.RetireAsset)
					asset.With(can(policy.ChangeAssetStatus)).Put("/status", srv.AssetHandler.SetAssetStatus)
					asset.With(can(policy.ViewAsset)).Get("/history", srv.AssetHandler.GetAssetHistory)
					asset.With(can(policy.ViewAsset)).Get("/depreciation", srv.AssetHandler.GetDepreciation)
				})
			})

			protected.Route("/maintenance", func(tickets chi.Router) {
				tickets.With(can(policy.ViewTicket)).Get("/", srv.TicketHandler.ListTickets)
				tickets.With(can(policy.CreateTicket)).Post("/", srv.TicketHandler.CreateTicket)

				tickets.Route("/{id}", func(ticket chi.Router) {
					ticket.With(can(policy.ViewTicket)).Get("/", srv.TicketHandler.GetTicket)
					ticket.With(can(policy.UpdateTicket)).Put("/", srv.TicketHandler.UpdateTicket)
					ticket.With(can(policy.DeleteTicket)).Delete("/", srv.TicketHandler.DeleteTicket)
					ticket.With(can(policy.ChangeTicketStatus)).Put("/status", srv.TicketHandler.SetTicketStatus)
					ticket.With(can(policy.ChangeTicketAssignment)).Put("/assign", srv.TicketHandler.AssignTicket)
					ticket.With(can(policy.UploadTicketAttachment)).Post("/upload", srv.TicketHandler.UploadAttachment)
				})
			})

			protected.Route("/licenses", func(licenses chi.Router) {
				licenses.With(can(policy.ViewLicense)).Get("/", srv.LicenseHandler.ListLicenses)
				licenses.With(can(policy.ManageLicense)).Post("/", srv.LicenseHandler.CreateLicense)
				licenses.With(can(policy.ViewLicense)).Get("/expiring", srv.LicenseHandler.ExpiringLicenses)

				licenses.Route("/{id}", func(license chi.Router) {
					license.With(can(policy.ViewLicense)).Get("/", srv.LicenseHandler.GetLicense)
					license.With(can(policy.ManageLicense)).Put("/", srv.LicenseHandler.UpdateLicense)
					license.With(can(policy.ManageLicense)).Delete("/", srv.LicenseHandler.DeleteLicense)
				})
			})

			protected.Route("/users", func(users chi.Router) {
				users.With(can(policy.ViewUsers)).Get("/", srv.UserHandler.ListUsers)
				users.With(can(policy.ViewUsers)).Get("/{id}", srv.UserHandler.GetUser)
				users.With(can(policy.ManageUsers)).Put("/{id}", srv.UserHandler.UpdateUser)
				users.With(can(policy.ManageUsers)).Delete("/{id}", srv.UserHandler.DeleteUser)
				users.With(can(policy.ViewAsset)).Get("/{id}/assets", srv.AssetHandler.ListUserAssets)
			})

			protected.Route("/dashboard", func(dashboard chi.Router) {
				dashboard.Use(can(policy.ViewDashboard))
				dashboard.Get("/stats", srv.DashboardHandler.GetStats)
				dashboard.Get("/assets-by-category", srv.DashboardHandler.AssetsByCategory)
				dashboard.Get("/assets-by-department", srv.DashboardHandler.AssetsByDepartment)
				dashboard.Get("/assets-by-status", srv.DashboardHandler.AssetsByStatus)
				dashboard.Get("/warranty-expiring", srv.DashboardHandler.WarrantyExpiring)
				dashboard.With(can(policy.ViewActivityLog)).Get("/recent-activities", srv.DashboardHandler.RecentActivities)
				dashboard.Get("/maintenance-stats", srv.DashboardHandler.MaintenanceStats)
				dashboard.Get("/asset-value-summary", srv.DashboardHandler.AssetValueSummary)
				dashboard.Get("/assets-timeline", srv.DashboardHandler.AssetsTimeline)
			})
		})
	})

	return r
}

type healthRes struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// health reports 503 only when postgres is unreachable; redis is optional.
func (srv *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	res := healthRes{Status: "ok", Database: "ok", Redis: "ok"}
	status := http.StatusOK
	if err := srv.DB.DB().PingContext(ctx); err != nil {
		res.Status, res.Database = "degraded", "unreachable"
		status = http.StatusServiceUnavailable
	}
	if err := srv.Redis.Ping(ctx); err != nil {
		res.Redis = "unreachable"
	}
	utils.RespondJSON(w, status, res)
}
