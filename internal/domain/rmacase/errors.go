package rmacase

import (
	"errors"
	"fmt"
	"strings"

	"retail-ops-core/internal/pkg/errs"
)

var (
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidSource         = errors.New("invalid source")
	ErrInvalidWarrantyStatus = errors.New("invalid warranty status")
	ErrInvalidDirection      = errors.New("invalid tracking direction")
	ErrEmptyTrackingUpdate   = errors.New("tracking update has no fields")
	ErrEmptyNote             = errors.New("note is empty")
	ErrAssigneeRequired      = errors.New("assignee name or email required")
)

// TransitionError carries enough structure for a caller to self-correct: the stages
// involved and, for guard failures, the missing field names.
type TransitionError struct {
	From    Stage
	To      Stage
	Missing []Field
}

func (e *TransitionError) Error() string {
	if len(e.Missing) > 0 {
		names := make([]string, len(e.Missing))
		for i, f := range e.Missing {
			names[i] = string(f)
		}
		return fmt.Sprintf("cannot enter %s: missing required fields [%s]", e.To, strings.Join(names, ", "))
	}
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Is lets callers match on the shared sentinels.
func (e *TransitionError) Is(target error) bool {
	if len(e.Missing) > 0 {
		return target == errs.ErrMissingRequiredFields
	}
	return target == errs.ErrInvalidTransition
}

func (e *TransitionError) MissingFieldNames() []string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return names
}
