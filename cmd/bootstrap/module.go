package bootstrap

import (
	"retail-ops-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	EventsModule,
	SLAModule,
	IdempotencyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
