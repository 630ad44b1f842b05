package app

import (
	"time"

	"eventlink-backend/internal/config"
	"eventlink-backend/internal/database"
	"eventlink-backend/internal/health"
	"eventlink-backend/internal/invites"
	"eventlink-backend/internal/middleware"
	"eventlink-backend/internal/payments"
	"eventlink-backend/internal/pkg/response"
	"eventlink-backend/internal/plans"
	"eventlink-backend/internal/rsvps"
	"eventlink-backend/internal/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration. DB and Redis may come back nil when the corresponding URLs
// are unset (e.g. tests); the routes that need them are only mounted when
// the dependency is available.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
		Views:                   templates.Engine(),
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
		app.Use(middleware.HealthMarker(rdb))
	}

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	// Health module
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	if db != nil {
		healthHandlers.DB = &gormDBPinger{db: db}
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	// Catalogs (no DB needed)
	app.Get("/api/v1/templates", func(c *fiber.Ctx) error {
		return response.Success(c, "Templates fetched successfully", templates.All(), nil)
	})
	app.Get("/api/v1/plans", func(c *fiber.Ctx) error {
		return response.Success(c, "Plans fetched successfully", plans.All(), nil)
	})

	// Payments module (simulated checkout)
	payHandlers := &payments.Handlers{Service: &payments.Service{}}
	app.Post("/api/v1/payments/simulate-checkout", payHandlers.SimulateCheckout)

	if db != nil {
		// Invites module: creation flow + public view access control
		invService := &invites.Service{DB: db}
		invHandlers := &invites.Handlers{Service: invService, InviteBaseURL: cfg.InviteBaseURL}
		invGroup := app.Group("/api/v1/invites")
		invGroup.Post("/create-invite", invHandlers.CreateInvite)
		invGroup.Post("/public/view/:inviteID", invHandlers.ViewInvite)

		// Public invite page (HTML)
		app.Get("/invite/:inviteID", invHandlers.InvitePage)

		// RSVP module: public submission (rate limited) + creator analytics
		rsvpService := &rsvps.Service{DB: db}
		rsvpHandlers := &rsvps.Handlers{Service: rsvpService}
		rsvpLimiter := middleware.RateLimit(middleware.RateLimitConfig{
			Rdb:       rdb,
			KeyPrefix: "ratelimit:rsvp",
			Max:       cfg.RsvpRateLimitMax,
			Window:    time.Duration(cfg.RsvpRateLimitWindow) * time.Second,
		})
		invGroup.Post("/public/:inviteID/rsvp", rsvpLimiter, rsvpHandlers.SubmitRsvp)
		invGroup.Get("/:inviteID/analytics", rsvpHandlers.Analytics)
		invGroup.Get("/:inviteID/analytics/export", rsvpHandlers.ExportCSV)
	}

	return app, db, rdb, nil
}
