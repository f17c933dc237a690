//go:build unit

package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra/events"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher_KeysByCase(t *testing.T) {
	w := &recordingWriter{}
	p := events.NewKafkaPublisher(w)

	caseID := uuid.New()
	at := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	ev := rmacase.ServiceEvent{ID: uuid.New(), CaseID: caseID, EventType: rmacase.EventStatusChanged, Summary: "received -> testing", CreatedAt: at}

	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, caseID.String(), string(msg.Key))
	assert.Equal(t, at, msg.Time)
	assert.Equal(t, "status_changed", string(msg.Headers[0].Value))

	var decoded rmacase.ServiceEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, ev.ID, decoded.ID)
}

func TestKafkaPublisher_Errors(t *testing.T) {
	p := events.NewKafkaPublisher(&recordingWriter{err: assert.AnError})
	err := p.Publish(context.Background(), rmacase.ServiceEvent{ID: uuid.New()})
	assert.ErrorIs(t, err, assert.AnError)

	assert.NoError(t, p.Publish(context.Background()))
}

func TestNewKafkaWriter_RequiresBroker(t *testing.T) {
	_, err := events.NewKafkaWriter(nil, "rma.service-events")
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := events.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), rmacase.ServiceEvent{ID: uuid.New(), EventType: rmacase.EventNote, Actor: "staff:kai@example.com"}))
	assert.Contains(t, buf.String(), `"event_type":"note"`)
	assert.Contains(t, buf.String(), `"actor":"staff:kai@example.com"`)
}
