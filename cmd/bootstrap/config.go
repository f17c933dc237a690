package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"retail-ops-core/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

var idempotencyBackends = []string{"", "postgres", "redis", "memory"}

// NewConfig loads the environment and rejects combinations envconfig cannot express.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	slog.Info("configuration loaded",
		"idempotency_backend", cfg.Idempotency.Backend,
		"idempotency_ttl", cfg.Idempotency.TTL,
		"idempotency_stale_after", cfg.Idempotency.StaleAfter,
		"kafka_enabled", len(cfg.Kafka.Brokers) > 0,
		"sla_policy_file", cfg.SLA.PolicyFile)
	return cfg, nil
}

func ValidateConfig(cfg config.Config) error {
	var problems []error
	idem := cfg.Idempotency
	if !slices.Contains(idempotencyBackends, idem.Backend) {
		problems = append(problems, fmt.Errorf("unknown IDEMPOTENCY_BACKEND %q", idem.Backend))
	}
	if idem.StaleAfter >= idem.TTL {
		problems = append(problems, fmt.Errorf("IDEMPOTENCY_STALE_AFTER (%s) must be shorter than IDEMPOTENCY_TTL (%s)", idem.StaleAfter, idem.TTL))
	}
	if idem.MaxKeyLength <= 0 {
		problems = append(problems, fmt.Errorf("IDEMPOTENCY_MAX_KEY_LENGTH must be positive"))
	}
	if idem.Backend == "redis" && cfg.Redis.URL == "" {
		problems = append(problems, fmt.Errorf("REDIS_URL is required for the redis idempotency backend"))
	}
	if cfg.RateLimit.CustomerFormRPS <= 0 || cfg.RateLimit.CustomerFormBurst <= 0 {
		problems = append(problems, fmt.Errorf("CUSTOMER_FORM_RPS and CUSTOMER_FORM_BURST must be positive"))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}
