package components

import (
	"retail-ops-core/internal/handler"
	"retail-ops-core/internal/handler/api"
	"retail-ops-core/internal/handler/middleware"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/jwt"
	"retail-ops-core/internal/usecase/gateway"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCaseHandler,
		api.NewAnalyticsHandler,
		api.NewWebhookHandler,
		api.NewCustomerFormHandler,
		api.NewIntegrationHandler,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
		func(gw gateway.Gateway, cfg config.Config) *middleware.IdempotencyMiddleware {
			return middleware.NewIdempotencyMiddleware(gw, cfg.Idempotency)
		},
		func(cfg config.Config) *middleware.ClientRateLimiter {
			return middleware.NewClientRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
