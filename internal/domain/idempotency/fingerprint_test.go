//go:build unit

package idempotency_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"retail-ops-core/internal/domain/idempotency"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	base := idempotency.Fingerprint(http.MethodPost, "/api/integrations/shopify/import", []byte(`{"a":1,"b":[1,2]}`))

	t.Run("key order and whitespace do not matter", func(t *testing.T) {
		other := idempotency.Fingerprint("post", "/api/integrations/shopify/import", []byte("{ \"b\": [1, 2],\n \"a\": 1 }"))
		assert.Equal(t, base, other)
	})

	t.Run("different body differs", func(t *testing.T) {
		other := idempotency.Fingerprint(http.MethodPost, "/api/integrations/shopify/import", []byte(`{"a":2,"b":[1,2]}`))
		assert.NotEqual(t, base, other)
	})

	t.Run("different path differs", func(t *testing.T) {
		other := idempotency.Fingerprint(http.MethodPost, "/api/integrations/klaviyo/campaigns/push", []byte(`{"a":1,"b":[1,2]}`))
		assert.NotEqual(t, base, other)
	})

	t.Run("large numbers keep precision", func(t *testing.T) {
		a := idempotency.Fingerprint(http.MethodPost, "/x", []byte(`{"id":9007199254740993}`))
		b := idempotency.Fingerprint(http.MethodPost, "/x", []byte(`{"id":9007199254740992}`))
		assert.NotEqual(t, a, b)
	})

	t.Run("non json body is hashed as trimmed bytes", func(t *testing.T) {
		a := idempotency.Fingerprint(http.MethodPost, "/x", []byte("plain text\n"))
		b := idempotency.Fingerprint(http.MethodPost, "/x", []byte("plain text"))
		assert.Equal(t, a, b)
	})
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, idempotency.ValidateKey("sync-42", 255))
	assert.ErrorIs(t, idempotency.ValidateKey("   ", 255), idempotency.ErrKeyEmpty)
	assert.ErrorIs(t, idempotency.ValidateKey(strings.Repeat("k", 256), 255), idempotency.ErrKeyTooLong)
	assert.ErrorIs(t, idempotency.ValidateKey("has space", 255), idempotency.ErrKeyInvalid)
}

func TestRecordLifecycleFlags(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := idempotency.NewInProgress("scope:k", "fp", now, time.Hour, time.Minute)

	assert.False(t, rec.Reclaimable(now))
	assert.True(t, rec.IsAbandoned(now.Add(time.Minute)))
	assert.True(t, rec.IsExpired(now.Add(time.Hour)))

	rec.State = idempotency.StateCompleted
	assert.False(t, rec.IsAbandoned(now.Add(2*time.Minute)))
	assert.False(t, rec.Reclaimable(now.Add(2*time.Minute)))
}

func TestStoredResponseCacheable(t *testing.T) {
	assert.True(t, idempotency.StoredResponse{StatusCode: http.StatusCreated}.Cacheable())
	assert.True(t, idempotency.StoredResponse{StatusCode: http.StatusUnprocessableEntity}.Cacheable())
	assert.False(t, idempotency.StoredResponse{StatusCode: http.StatusBadGateway}.Cacheable())
	assert.False(t, idempotency.StoredResponse{}.Cacheable())
}

func TestScopedKey(t *testing.T) {
	assert.Equal(t, "shopify.sync:sync-42", idempotency.ScopedKey("shopify.sync", " sync-42 "))
}
