//go:build unit

package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithHeaders(t *testing.T) {
	t.Run("missing headers are appended", func(t *testing.T) {
		got := withHeaders([]string{"Content-Type"}, HeaderIdempotencyKey)
		assert.Equal(t, []string{"Content-Type", HeaderIdempotencyKey}, got)
	})

	t.Run("present headers match case-insensitively", func(t *testing.T) {
		got := withHeaders([]string{"idempotency-key"}, HeaderIdempotencyKey)
		assert.Equal(t, []string{"idempotency-key"}, got)
	})

	t.Run("base slice is not mutated", func(t *testing.T) {
		base := make([]string, 1, 4)
		base[0] = "Accept"
		_ = withHeaders(base, "Retry-After")
		assert.Equal(t, []string{"Accept"}, base)
	})
}
