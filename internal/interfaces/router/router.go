package router

import (
	assignsvc "propdesk-backend/internal/application/assignments"
	dashsvc "propdesk-backend/internal/application/dashboard"
	dealsvc "propdesk-backend/internal/application/deals"
	invsvc "propdesk-backend/internal/application/inventory"
	matchsvc "propdesk-backend/internal/application/matching"
	"propdesk-backend/internal/application/notifications"
	reqsvc "propdesk-backend/internal/application/requirements"
	stalesvc "propdesk-backend/internal/application/staleness"
	"propdesk-backend/internal/config"
	"propdesk-backend/internal/infrastructure/database"
	assignhandler "propdesk-backend/internal/interfaces/handlers/assignments"
	dashhandler "propdesk-backend/internal/interfaces/handlers/dashboard"
	dealhandler "propdesk-backend/internal/interfaces/handlers/deals"
	healthhandler "propdesk-backend/internal/interfaces/handlers/health"
	invhandler "propdesk-backend/internal/interfaces/handlers/inventory"
	matchhandler "propdesk-backend/internal/interfaces/handlers/matching"
	reqhandler "propdesk-backend/internal/interfaces/handlers/requirements"
	stalehandler "propdesk-backend/internal/interfaces/handlers/staleness"
	"propdesk-backend/internal/middleware"
	"propdesk-backend/internal/scheduler"

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

// CreateApp builds the Fiber app with all global middleware, route
// registration, and the reminder scheduler (not yet started).
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, *scheduler.Scheduler, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, nil, err
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
			return nil, nil, nil, nil, errDB
		}
	}

	// Health endpoints (no token gate)
	healthHandlers := &healthhandler.Handlers{Rdb: rdb}
	if db != nil {
		healthHandlers.DB = &gormDBPinger{db: db}
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/errors", healthHandlers.Errors)

	var sched *scheduler.Scheduler

	// Core modules require DB and the bearer-token gate.
	if db != nil {
		requireToken := middleware.RequireToken(cfg.APIToken)

		reqService := &reqsvc.Service{DB: db}
		reqHandlers := &reqhandler.Handlers{Service: reqService}
		reqGroup := app.Group("/api/v1/requirements", requireToken)
		reqGroup.Post("/create-requirement", reqHandlers.CreateRequirement)
		reqGroup.Get("/get-all-requirements", reqHandlers.GetAllRequirements)
		reqGroup.Get("/get-requirement/:requirement_id", reqHandlers.GetRequirement)

		invService := &invsvc.Service{DB: db}
		invHandlers := &invhandler.Handlers{Service: invService}
		invGroup := app.Group("/api/v1/inventory", requireToken)
		invGroup.Post("/create-item", invHandlers.CreateItem)
		invGroup.Get("/get-all-items", invHandlers.GetAllItems)
		invGroup.Get("/get-item/:inventory_id", invHandlers.GetItem)
		invGroup.Patch("/update-unit-status", invHandlers.UpdateUnitStatus)

		matchService := &matchsvc.Service{DB: db}
		matchHandlers := &matchhandler.Handlers{Service: matchService}
		matchGroup := app.Group("/api/v1/matching", requireToken)
		matchGroup.Get("/find-candidates/:requirement_id", matchHandlers.FindCandidates)

		dealService := &dealsvc.Service{DB: db}
		dealHandlers := &dealhandler.Handlers{Service: dealService}
		dealGroup := app.Group("/api/v1/deals", requireToken)
		dealGroup.Post("/create-deal", dealHandlers.CreateDeal)
		dealGroup.Get("/get-open-deals", dealHandlers.GetOpenDeals)
		dealGroup.Get("/get-closed-deals", dealHandlers.GetClosedDeals)
		dealGroup.Get("/get-deal/:deal_id", dealHandlers.GetDeal)
		dealGroup.Patch("/update-status", dealHandlers.UpdateStatus)
		dealGroup.Patch("/update-details", dealHandlers.UpdateDetails)

		assignService := &assignsvc.Service{DB: db, EnforceUnique: cfg.AssignmentUnique}
		assignHandlers := &assignhandler.Handlers{Service: assignService}
		assignGroup := app.Group("/api/v1/assignments", requireToken)
		assignGroup.Post("/assign", assignHandlers.Assign)
		assignGroup.Post("/unassign", assignHandlers.Unassign)
		assignGroup.Patch("/update-remarks", assignHandlers.UpdateRemarks)
		assignGroup.Get("/get-assigned/:deal_id", assignHandlers.ListAssigned)

		dashService := &dashsvc.Service{DB: db}
		dashHandlers := &dashhandler.Handlers{Service: dashService}
		dashGroup := app.Group("/api/v1/dashboard", requireToken)
		dashGroup.Get("/summary", dashHandlers.GetSummary)

		staleService := &stalesvc.Service{DB: db}
		sender := &notifications.BrevoClient{
			APIKey:   cfg.SendinblueAPIKey,
			MailFrom: cfg.MailFrom,
		}
		sched = scheduler.New(staleService, sender, cfg.MailFrom, cfg.ReminderRecipients, cfg.ReminderChunkSize, cfg.ReminderCron)

		staleHandlers := &stalehandler.Handlers{Service: staleService, Scheduler: sched}
		staleGroup := app.Group("/api/v1/staleness", requireToken)
		staleGroup.Get("/get-stale-deals", staleHandlers.GetStaleDeals)
		staleGroup.Get("/get-unassigned-requirements", staleHandlers.GetUnassignedRequirements)
		staleGroup.Post("/run-sweep", staleHandlers.RunSweep)
	}

	return app, db, rdb, sched, nil
}
