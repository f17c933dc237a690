package bootstrap

import (
	"fmt"
	"os"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/config"

	"go.uber.org/fx"
)

var SLAModule = fx.Module("sla",
	fx.Provide(
		NewSLAPolicy,
		rmacase.NewLifecycle,
	),
)

func NewSLAPolicy(cfg config.Config) (rmacase.SLAPolicy, error) {
	if cfg.SLA.PolicyFile == "" {
		return rmacase.DefaultSLAPolicy(), nil
	}
	data, err := os.ReadFile(cfg.SLA.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("read SLA_POLICY_FILE: %w", err)
	}
	return rmacase.ParseSLAPolicyYAML(data)
}
