package idempotency

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

func (s State) String() string {
	return string(s)
}

// StoredResponse is what a completed operation replays verbatim.
type StoredResponse struct {
	StatusCode int         `json:"status_code"`
	Headers    http.Header `json:"headers,omitempty"`
	Body       []byte      `json:"body,omitempty"`
}

// Cacheable reports whether the response describes a finished outcome.
// Server-side failures are not stored so a retry can run the handler again.
func (r StoredResponse) Cacheable() bool {
	return r.StatusCode > 0 && r.StatusCode < http.StatusInternalServerError
}

// Record is one row per scoped idempotency key. Token identifies the holder of an
// in-progress lock so only that holder can complete or release it.
type Record struct {
	Key         string
	Fingerprint string
	State       State
	Token       uuid.UUID
	Response    *StoredResponse
	LockedUntil time.Time
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func NewInProgress(key, fingerprint string, now time.Time, ttl, staleAfter time.Duration) *Record {
	return &Record{
		Key:         key,
		Fingerprint: fingerprint,
		State:       StateInProgress,
		Token:       uuid.New(),
		LockedUntil: now.Add(staleAfter),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

func (r *Record) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// IsAbandoned is true for an in-progress lock whose holder exceeded the staleness bound.
func (r *Record) IsAbandoned(now time.Time) bool {
	return r.State == StateInProgress && !now.Before(r.LockedUntil)
}

// Reclaimable records may be atomically replaced by a new attempt.
func (r *Record) Reclaimable(now time.Time) bool {
	return r.IsExpired(now) || r.IsAbandoned(now)
}

// MaxScopeLength bounds the scope prefix ScopedKey adds to a caller key.
const MaxScopeLength = 128

// ScopedKey namespaces a caller key by operation class so the same caller key used
// against two different endpoints never collides.
func ScopedKey(scope, key string) string {
	return scope + ":" + strings.TrimSpace(key)
}
