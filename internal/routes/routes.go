package routes

import (
	"time"

	"github.com/clickngoai/clickngoai-backend/internal/config"
	"github.com/clickngoai/clickngoai-backend/internal/handlers"
	"github.com/clickngoai/clickngoai-backend/internal/middleware"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	templateHandler *handlers.TemplateHandler,
	buildHandler *handlers.BuildHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	adminHandler *handlers.AdminHandler,
	aiHandler *handlers.AIHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	// Me and Logout stay public: Me answers {"user": null} for anonymous
	// callers and Logout must succeed even with an expired access token.
	auth.Get("/me", authHandler.Me)
	auth.Post("/logout", authHandler.Logout)

	// Public surfaces: landing pages, download tracking, template catalog,
	// pricing.
	api.Get("/landing/:slug", projectHandler.GetBySlug)
	api.Post("/projects/:id/download", projectHandler.TrackDownload)
	api.Get("/templates", templateHandler.List)
	api.Get("/templates/category/:category", templateHandler.GetByCategory)
	api.Get("/templates/:id", templateHandler.Get)
	api.Get("/subscriptions/pricing", subscriptionHandler.GetPricing)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so it never affects the public surface above.
	jwt := middleware.JWTProtected(cfg)

	api.Get("/projects", jwt, projectHandler.List)
	api.Post("/projects", jwt, projectHandler.Create)
	api.Get("/projects/:id", jwt, projectHandler.Get)
	api.Patch("/projects/:id", jwt, projectHandler.Update)
	api.Delete("/projects/:id", jwt, projectHandler.Delete)

	api.Get("/builds/status/:projectId", jwt, buildHandler.GetStatus)
	api.Post("/builds/simulate/:projectId", jwt, buildHandler.SimulateBuild)

	api.Get("/subscriptions/my", jwt, subscriptionHandler.GetMy)
	api.Post("/subscriptions", jwt, subscriptionHandler.Create)
	api.Post("/subscriptions/:id/cancel", jwt, subscriptionHandler.Cancel)

	api.Post("/ai/generate-app-idea", jwt, aiHandler.GenerateAppIdea)

	// Admin panel (protected + admin role required)
	admin := api.Group("/admin", jwt, middleware.RoleRequired(db, cfg, models.RoleAdmin))
	admin.Get("/stats", adminHandler.GetStats)
	admin.Get("/users", adminHandler.GetUsers)
	admin.Get("/projects/recent", adminHandler.GetRecentProjects)
	admin.Get("/projects", adminHandler.GetProjects)
	admin.Get("/logs", adminHandler.GetLogs)
	admin.Get("/queue", adminHandler.GetBuildQueue)

	api.Get("/builds/queue", jwt, middleware.RoleRequired(db, cfg, models.RoleAdmin), buildHandler.GetQueue)
	api.Post("/builds/process-next", jwt, middleware.RoleRequired(db, cfg, models.RoleAdmin), buildHandler.ProcessNext)
	api.Post("/templates", jwt, middleware.RoleRequired(db, cfg, models.RoleAdmin), templateHandler.Create)

	// Entitlement mutations require the superadmin role.
	superadmin := middleware.RoleRequired(db, cfg, models.RoleSuperadmin)
	admin.Patch("/users/:id", superadmin, adminHandler.UpdateUser)
	admin.Put("/pricing/:tier", superadmin, adminHandler.UpsertPricingPlan)
}
