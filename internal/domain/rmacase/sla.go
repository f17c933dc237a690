package rmacase

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SLAPolicy maps priority to the time allowed between receipt and completion.
type SLAPolicy map[Priority]time.Duration

func DefaultSLAPolicy() SLAPolicy {
	return SLAPolicy{
		PriorityUrgent: 24 * time.Hour,
		PriorityHigh:   72 * time.Hour,
		PriorityNormal: 120 * time.Hour,
		PriorityLow:    240 * time.Hour,
	}
}

// DueAt falls back to the normal offset for priorities the policy does not list.
func (p SLAPolicy) DueAt(from time.Time, priority Priority) time.Time {
	offset, ok := p[priority]
	if !ok {
		offset = p[PriorityNormal]
	}
	return from.Add(offset)
}

type slaPolicyFile struct {
	Offsets map[string]string `yaml:"offsets"`
}

// ParseSLAPolicyYAML overlays a YAML table onto the defaults:
//
//	offsets:
//	  urgent: 12h
//	  high: 48h
func ParseSLAPolicyYAML(data []byte) (SLAPolicy, error) {
	var file slaPolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sla policy: %w", err)
	}

	policy := DefaultSLAPolicy()
	for name, raw := range file.Offsets {
		priority := Priority(name)
		if !priority.IsValid() {
			return nil, fmt.Errorf("parse sla policy: %w: %q", ErrInvalidPriority, name)
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse sla policy offset for %s: %w", name, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("parse sla policy: offset for %s must be positive", name)
		}
		policy[priority] = d
	}
	return policy, nil
}
