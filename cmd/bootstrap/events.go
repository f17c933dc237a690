package bootstrap

import (
	"context"
	"log/slog"

	"retail-ops-core/internal/infra/events"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher publishes service events to kafka when brokers are configured
// and only logs them otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("KAFKA_BROKERS が未設定のため、サービスイベントはログ出力のみになります")
		return events.NewLogPublisher(logger), nil
	}

	writer, err := events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, err
	}
	publisher := events.NewKafkaPublisher(writer)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	logger.Info("Kafka publisher configured", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher, nil
}
