package events

import (
	"context"
	"log/slog"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/usecase/shared"
)

// LogPublisher is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

var _ shared.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...rmacase.ServiceEvent) error {
	for _, ev := range events {
		p.logger.InfoContext(ctx, "service event",
			slog.String("event_id", ev.ID.String()),
			slog.String("case_id", ev.CaseID.String()),
			slog.String("event_type", string(ev.EventType)),
			slog.String("actor", ev.Actor),
		)
	}
	return nil
}
