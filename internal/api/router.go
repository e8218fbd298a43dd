package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/getnaildla/salon-frontdesk/internal/api/handler"
	"github.com/getnaildla/salon-frontdesk/internal/api/middleware"
	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
	"github.com/getnaildla/salon-frontdesk/internal/core/service"
)

// Dependencies carries everything the route table needs. Redis is optional;
// a nil client disables the readiness check for it.
type Dependencies struct {
	Salon     ports.UpstreamPinger
	Calendar  ports.CalendarService
	Schedule  ports.ScheduleService
	Resolver  *service.RoleResolver
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("frontdesk"))

	// --- Handlers ---
	calendarHandler := handler.NewCalendarHandler(deps.Calendar)
	appointmentHandler := handler.NewAppointmentHandler(deps.Schedule)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Salon, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Calendar and scheduling routes ---
	// Anonymous requests pass the identity middleware with no email and
	// resolve to the viewer role; mutations are gated per route.
	v1 := e.Group("/v1",
		middleware.Identity(deps.JWTSecret),
		middleware.ResolveRole(deps.Resolver),
	)

	v1.GET("/calendar/week", calendarHandler.Week)
	v1.GET("/schedule/options", appointmentHandler.Options)

	manage := middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff)
	v1.POST("/appointments", appointmentHandler.Create, manage)
	v1.PUT("/appointments/:id", appointmentHandler.Update, manage)
	v1.PUT("/appointments/:id/complete", appointmentHandler.Complete, manage)
	v1.POST("/refresh", calendarHandler.Refresh, manage)

	// Cancellations stay admin-only.
	v1.DELETE("/appointments/:id", appointmentHandler.Delete,
		middleware.RequireRole(domain.RoleAdmin))

	return e
}
