package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gearguard/maintenance-system/internal/api/handler"
	"github.com/gearguard/maintenance-system/internal/api/middleware"
	"github.com/gearguard/maintenance-system/internal/core/domain"
	"github.com/gearguard/maintenance-system/internal/core/service"
	mongodb "github.com/gearguard/maintenance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gearguard/maintenance-system/internal/infrastructure/db/redis"
	"github.com/gearguard/maintenance-system/internal/infrastructure/notify"
	"github.com/gearguard/maintenance-system/internal/infrastructure/queue"
)

// Options carries everything the router needs to assemble the application.
type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	NotifyWorkers int
	Logger        zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered and starts
// the notification dispatcher. Workers stop when ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gearguard"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	equipmentRepo := mongodb.NewEquipmentRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	workCenterRepo := mongodb.NewWorkCenterRepository(db)

	// --- Notifications ---
	dispatcher := queue.NewDispatcher(opts.NotifyWorkers, notify.NewLogNotifier(opts.Logger), opts.Logger)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(authRepo, opts.JWTSecret, opts.TokenTTL)
	requestService := service.NewRequestService(
		requestRepo,
		equipmentRepo,
		dispatcher,
		redisdb.NewOverdueDedup(rdb),
		opts.Logger,
	)
	equipmentService := service.NewEquipmentService(equipmentRepo, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	requestHandler := handler.NewRequestHandler(requestService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService)
	catalogHandler := handler.NewCatalogHandler(teamRepo, workCenterRepo)

	authMiddleware := middleware.Auth(opts.JWTSecret)
	managerOrAdmin := middleware.RBAC(domain.RoleManager, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Maintenance requests ---
	// Per-request and per-field authorization happens in the rule engine, so
	// these routes carry no RBAC gate: denial reasons must reach the caller.
	requests := e.Group("/v1/requests", authMiddleware)
	requests.POST("", requestHandler.Create)
	requests.GET("", requestHandler.List)
	requests.POST("/check-overdue", requestHandler.CheckOverdue)
	requests.GET("/:id", requestHandler.Get)
	requests.PUT("/:id", requestHandler.Update)
	requests.DELETE("/:id", requestHandler.Delete)

	// --- Equipment ---
	equipment := e.Group("/v1/equipment", authMiddleware)
	equipment.GET("", equipmentHandler.List)
	equipment.GET("/:id", equipmentHandler.Get)
	equipment.POST("", equipmentHandler.Create, managerOrAdmin)
	equipment.POST("/:id/scrap", equipmentHandler.Scrap, managerOrAdmin)

	// --- Catalogs ---
	teams := e.Group("/v1/teams", authMiddleware)
	teams.GET("", catalogHandler.ListTeams)
	teams.POST("", catalogHandler.CreateTeam, managerOrAdmin)

	workCenters := e.Group("/v1/work-centers", authMiddleware)
	workCenters.GET("", catalogHandler.ListWorkCenters)
	workCenters.POST("", catalogHandler.CreateWorkCenter, managerOrAdmin)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
