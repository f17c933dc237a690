package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCaseInput struct {
	Priority       rmacase.Priority
	IssueSummary   string
	IssueDetails   json.RawMessage
	SerialNumber   string
	SKU            string
	Customer       rmacase.Customer
	OrderReference string
	Inbound        rmacase.Tracking
	Owner          rmacase.Person
	Technician     rmacase.Person
	ReceivedAt     *time.Time
}

// ExpectedVersion, when set, must equal the stored version or the mutation is
// rejected with ErrCaseConcurrentModification.
type TransitionInput struct {
	Status          rmacase.Stage
	Note            string
	ExpectedVersion *int64
}

type TrackingInput struct {
	Update          rmacase.TrackingUpdate
	ExpectedVersion *int64
}

type WarrantyInput struct {
	Decision        rmacase.WarrantyDecision
	ExpectedVersion *int64
}

type AssignInput struct {
	Owner           *rmacase.Person
	Technician      *rmacase.Person
	ExpectedVersion *int64
}

type TrackingResult struct {
	Case           *rmacase.Case
	AutoAdvancedTo *rmacase.Stage
}

type CaseCommands interface {
	Create(ctx context.Context, in CreateCaseInput, actor string) (*rmacase.Case, error)
	Transition(ctx context.Context, id uuid.UUID, in TransitionInput, actor string) (*rmacase.Case, error)
	UpdateTracking(ctx context.Context, id uuid.UUID, in TrackingInput, actor string) (*TrackingResult, error)
	DecideWarranty(ctx context.Context, id uuid.UUID, in WarrantyInput, actor string) (*rmacase.Case, error)
	Assign(ctx context.Context, id uuid.UUID, in AssignInput, actor string) (*rmacase.Case, error)
	AddNote(ctx context.Context, id uuid.UUID, note, actor string) (*rmacase.Case, error)
}

type caseUseCaseImpl struct {
	uow       shared.UnitOfWork
	lifecycle *rmacase.Lifecycle
	publisher shared.EventPublisher
	logger    *slog.Logger
}

func NewCaseUseCase(uow shared.UnitOfWork, lifecycle *rmacase.Lifecycle, publisher shared.EventPublisher) CaseCommands {
	return &caseUseCaseImpl{
		uow:       uow,
		lifecycle: lifecycle,
		publisher: publisher,
		logger:    slog.Default().With("component", "case_commands"),
	}
}

func (u *caseUseCaseImpl) Create(ctx context.Context, in CreateCaseInput, actor string) (*rmacase.Case, error) {
	c, ev, err := u.lifecycle.Open(rmacase.OpenParams{
		Source:         rmacase.SourceManual,
		Priority:       in.Priority,
		IssueSummary:   in.IssueSummary,
		IssueDetails:   in.IssueDetails,
		SerialNumber:   in.SerialNumber,
		SKU:            in.SKU,
		Customer:       in.Customer,
		OrderReference: in.OrderReference,
		Inbound:        in.Inbound,
		Owner:          in.Owner,
		Technician:     in.Technician,
		ReceivedAt:     in.ReceivedAt,
	}, actor)
	if err != nil {
		return nil, domainErr(err)
	}

	if err := u.insert(ctx, c, ev); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *caseUseCaseImpl) Transition(ctx context.Context, id uuid.UUID, in TransitionInput, actor string) (*rmacase.Case, error) {
	return u.mutate(ctx, id, in.ExpectedVersion, func(c *rmacase.Case) ([]rmacase.ServiceEvent, error) {
		ev, err := u.lifecycle.Transition(c, in.Status, in.Note, actor)
		if err != nil {
			return nil, err
		}
		return []rmacase.ServiceEvent{ev}, nil
	})
}

func (u *caseUseCaseImpl) UpdateTracking(ctx context.Context, id uuid.UUID, in TrackingInput, actor string) (*TrackingResult, error) {
	var advanced *rmacase.Stage
	c, err := u.mutate(ctx, id, in.ExpectedVersion, func(c *rmacase.Case) ([]rmacase.ServiceEvent, error) {
		out, err := u.lifecycle.ApplyTracking(c, in.Update, actor)
		if err != nil {
			return nil, err
		}
		advanced = out.AutoAdvancedTo
		return out.Events, nil
	})
	if err != nil {
		return nil, err
	}
	return &TrackingResult{Case: c, AutoAdvancedTo: advanced}, nil
}

func (u *caseUseCaseImpl) DecideWarranty(ctx context.Context, id uuid.UUID, in WarrantyInput, actor string) (*rmacase.Case, error) {
	return u.mutate(ctx, id, in.ExpectedVersion, func(c *rmacase.Case) ([]rmacase.ServiceEvent, error) {
		ev, err := u.lifecycle.DecideWarranty(c, in.Decision, actor)
		if err != nil {
			return nil, err
		}
		return []rmacase.ServiceEvent{ev}, nil
	})
}

func (u *caseUseCaseImpl) Assign(ctx context.Context, id uuid.UUID, in AssignInput, actor string) (*rmacase.Case, error) {
	return u.mutate(ctx, id, in.ExpectedVersion, func(c *rmacase.Case) ([]rmacase.ServiceEvent, error) {
		ev, err := u.lifecycle.Assign(c, in.Owner, in.Technician, actor)
		if err != nil {
			return nil, err
		}
		return []rmacase.ServiceEvent{ev}, nil
	})
}

func (u *caseUseCaseImpl) AddNote(ctx context.Context, id uuid.UUID, note, actor string) (*rmacase.Case, error) {
	return u.mutate(ctx, id, nil, func(c *rmacase.Case) ([]rmacase.ServiceEvent, error) {
		ev, err := u.lifecycle.AddNote(c, note, actor)
		if err != nil {
			return nil, err
		}
		return []rmacase.ServiceEvent{ev}, nil
	})
}

func (u *caseUseCaseImpl) insert(ctx context.Context, c *rmacase.Case, ev rmacase.ServiceEvent) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cases().Insert(ctx, c); err != nil {
			return err
		}
		return tx.Cases().AppendEvents(ctx, ev)
	})
	if err != nil {
		return storeErr(err)
	}
	u.publish(ctx, ev)
	return nil
}

// mutate is the single guard-then-write path: load, check version, apply fn to the
// loaded case, then write the case and its events in one transaction. fn must leave
// the case untouched when it returns an error.
func (u *caseUseCaseImpl) mutate(
	ctx context.Context,
	id uuid.UUID,
	expectedVersion *int64,
	fn func(c *rmacase.Case) ([]rmacase.ServiceEvent, error),
) (*rmacase.Case, error) {
	var (
		updated *rmacase.Case
		events  []rmacase.ServiceEvent
	)

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Cases().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if expectedVersion != nil && *expectedVersion != c.Version {
			return errs.Wrapf(errs.ErrCaseConcurrentModification, "expected version %d, have %d", *expectedVersion, c.Version)
		}

		version := c.Version
		evs, err := fn(c)
		if err != nil {
			return domainErr(err)
		}
		if err := tx.Cases().Update(ctx, c, version); err != nil {
			return err
		}
		if len(evs) > 0 {
			if err := tx.Cases().AppendEvents(ctx, evs...); err != nil {
				return err
			}
		}
		updated, events = c, evs
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	u.publish(ctx, events...)
	return updated, nil
}

func (u *caseUseCaseImpl) publish(ctx context.Context, events ...rmacase.ServiceEvent) {
	publishEvents(ctx, u.publisher, u.logger, events...)
}

func publishEvents(ctx context.Context, publisher shared.EventPublisher, logger *slog.Logger, events ...rmacase.ServiceEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(context.WithoutCancel(ctx), events...); err != nil {
		logger.Warn("failed to publish service events",
			"case_id", events[0].CaseID.String(),
			"count", len(events),
			"error", err.Error())
	}
}

// domainErr keeps transition and warranty errors intact for the handler, which
// reports them with detail; other lifecycle rejections are plain validation failures.
func domainErr(err error) error {
	var te *rmacase.TransitionError
	switch {
	case errors.As(err, &te):
		return err
	case errs.Is(err, errs.ErrWarrantyNotesRequired), errs.Is(err, errs.ErrCaseConcurrentModification):
		return err
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

// storeErr translates repository kinds into the sentinels handlers map to status codes.
// Anything it does not recognize as a business outcome is a store failure.
func storeErr(err error) error {
	var te *rmacase.TransitionError
	switch {
	case errors.As(err, &te),
		errs.Is(err, errs.ErrDomainValidation),
		errs.Is(err, errs.ErrWarrantyNotesRequired),
		errs.Is(err, errs.ErrCaseConcurrentModification):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrCaseNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrCaseConcurrentModification)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
