//go:build unit

package bootstrap_test

import (
	"testing"
	"time"

	"retail-ops-core/cmd/bootstrap"
	"retail-ops-core/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "test config is valid",
			mutate: func(*config.Config) {},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *config.Config) { c.Idempotency.Backend = "etcd" },
			wantErr: `unknown IDEMPOTENCY_BACKEND "etcd"`,
		},
		{
			name:    "stale window not shorter than ttl",
			mutate:  func(c *config.Config) { c.Idempotency.StaleAfter = c.Idempotency.TTL },
			wantErr: "must be shorter than IDEMPOTENCY_TTL",
		},
		{
			name: "redis backend without url",
			mutate: func(c *config.Config) {
				c.Idempotency.Backend = "redis"
				c.Redis.URL = ""
			},
			wantErr: "REDIS_URL is required",
		},
		{
			name:    "customer form limiter disabled",
			mutate:  func(c *config.Config) { c.RateLimit.CustomerFormBurst = 0 },
			wantErr: "CUSTOMER_FORM_BURST must be positive",
		},
		{
			name: "all problems reported together",
			mutate: func(c *config.Config) {
				c.Idempotency.MaxKeyLength = 0
				c.Idempotency.StaleAfter = 48 * time.Hour
			},
			wantErr: "IDEMPOTENCY_MAX_KEY_LENGTH must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := bootstrap.ValidateConfig(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
