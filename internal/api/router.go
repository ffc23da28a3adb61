package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/footballagentsl/accounts-api/docs"
	"github.com/footballagentsl/accounts-api/internal/api/handler"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Accounts ports.AccountService
	Profiles ports.ProfileService
	Clubs    ports.ClubService

	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.HealthCheck

	Logger         zerolog.Logger
	RequestTimeout time.Duration

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
		Skipper:    skipOperational,
	}))
	if deps.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeout(deps.RequestTimeout))
	}

	health := handler.NewHealthHandler(deps.Checks)
	accounts := handler.NewAccountHandler(deps.Accounts)
	profiles := handler.NewProfileHandler(deps.Profiles)
	clubs := handler.NewClubHandler(deps.Clubs)

	// --- Operational routes ---
	e.GET("/", health.Root)
	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Accounts ---
	e.GET("/roles", accounts.ListRoles)
	e.GET("/users", accounts.List)
	e.POST("/users", accounts.Create)
	e.GET("/users/:id", accounts.Get)
	e.PUT("/users/:id", accounts.Update)
	e.DELETE("/users/:id", accounts.Delete)

	// --- Profiles ---
	e.POST("/users/:id/player-profile", profiles.CreatePlayer)
	e.GET("/users/:id/player-profile", profiles.GetPlayer)
	e.DELETE("/users/:id/player-profile", profiles.DeletePlayer)
	e.POST("/users/:id/agent-profile", profiles.CreateAgent)
	e.GET("/users/:id/agent-profile", profiles.GetAgent)
	e.DELETE("/users/:id/agent-profile", profiles.DeleteAgent)

	// --- Clubs ---
	e.POST("/clubs", clubs.Create)
	e.GET("/clubs", clubs.List)
	e.GET("/clubs/:id", clubs.Get)
	e.DELETE("/clubs/:id", clubs.Delete)

	return e
}

// skipOperational keeps probes, scrapes and docs out of the HTTP metrics.
func skipOperational(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			switch {
			case v.Status >= http.StatusInternalServerError:
				event = log.Error().Err(v.Error)
			case v.Status >= http.StatusBadRequest:
				event = log.Warn()
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
