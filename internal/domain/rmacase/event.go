package rmacase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated         EventType = "created"
	EventStatusChanged   EventType = "status_changed"
	EventNote            EventType = "note"
	EventTrackingUpdated EventType = "tracking_updated"
	EventWarrantyDecided EventType = "warranty_decided"
	EventAssigned        EventType = "assigned"
)

// IsStageBoundary reports whether the event starts the case's current stage.
func (t EventType) IsStageBoundary() bool {
	return t == EventCreated || t == EventStatusChanged
}

// ServiceEvent is immutable once written; created_at ordering defines stage boundaries.
type ServiceEvent struct {
	ID        uuid.UUID       `json:"id"`
	CaseID    uuid.UUID       `json:"case_id"`
	EventType EventType       `json:"event_type"`
	Summary   string          `json:"summary"`
	Notes     string          `json:"notes,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Actor     string          `json:"actor,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type StatusChange struct {
	FromStatus Stage  `json:"from_status,omitempty"`
	ToStatus   Stage  `json:"to_status"`
	Trigger    string `json:"trigger,omitempty"`
}

func newEvent(caseID uuid.UUID, t EventType, summary, notes, actor string, metadata any, at time.Time) ServiceEvent {
	var raw json.RawMessage
	if metadata != nil {
		// metadata values are plain structs and maps of strings; marshal cannot fail
		raw, _ = json.Marshal(metadata)
	}
	return ServiceEvent{
		ID:        uuid.New(),
		CaseID:    caseID,
		EventType: t,
		Summary:   summary,
		Notes:     notes,
		Metadata:  raw,
		Actor:     actor,
		CreatedAt: at,
	}
}
