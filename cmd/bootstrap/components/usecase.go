package components

import (
	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra/outbound"
	"retail-ops-core/internal/pkg/clock"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/usecase/commands"
	"retail-ops-core/internal/usecase/queries"
	"retail-ops-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *outbound.Client {
			return outbound.NewClient(cfg.Outbound)
		},
		fx.As(new(commands.OutboundPlatform)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCaseUseCase,
		commands.NewCustomerFormUseCase,
		commands.NewIntegrationUseCase,
		func(uow shared.UnitOfWork, lifecycle *rmacase.Lifecycle, publisher shared.EventPublisher, cfg config.Config) commands.IngestionCommands {
			return commands.NewIngestionUseCase(uow, lifecycle, publisher, cfg.Webhook.ShopifySecret)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCaseQueries,
		queries.NewAnalyticsQueries,
	),
)
