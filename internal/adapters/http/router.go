package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/question-bank/internal/adapters/http/handlers"
	"github.com/jsamuelsen/question-bank/internal/adapters/http/middleware"
	"github.com/jsamuelsen/question-bank/internal/app/loader"
	"github.com/jsamuelsen/question-bank/internal/platform/config"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
)

// RouterConfig holds what SetupRouter mounts.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	// GraphQLPath is where the GraphQL endpoint is mounted, e.g. /graphql.
	GraphQLPath string

	// RequestTimeout bounds GraphQL requests. Zero disables it.
	RequestTimeout time.Duration

	// Auth enables gateway header auth on the GraphQL endpoint when Enabled.
	Auth *config.AuthConfig

	Health  *handlers.HealthHandler
	GraphQL *handlers.GraphQLHandler
	Loaders *loader.ContextLoader
}

// SetupRouter installs the middleware and routes on engine.
//
// Global middleware, first to last:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and HTTP metrics
//  5. Request logging (skips /-/ probes)
//
// The GraphQL route adds a timeout, optional auth and per-request loaders.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	engine.NoRoute(notFound)

	if cfg.Health != nil {
		cfg.Health.Register(engine.Group("/-"))
	}

	if cfg.GraphQL == nil {
		return
	}

	api := engine.Group("")

	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.Auth != nil && cfg.Auth.Enabled {
		api.Use(middleware.RequireAuth(cfg.Auth))

		if cfg.Auth.RequiredRole != "" {
			api.Use(middleware.RequireRole(cfg.Auth, cfg.Auth.RequiredRole))
		}
	}

	if cfg.Loaders != nil {
		api.Use(middleware.Loaders(cfg.Loaders))
	}

	cfg.GraphQL.Register(api, cfg.GraphQLPath)
}
