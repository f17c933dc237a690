package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/shared"
)

type CustomerFormInput struct {
	Name                  string
	Email                 string
	Phone                 string
	OrderReference        string
	SKU                   string
	SerialNumber          string
	IssueSummary          string
	IssueDetails          string
	InboundCarrier        string
	InboundTrackingNumber string
}

type CustomerFormCommands interface {
	Submit(ctx context.Context, in CustomerFormInput) (*rmacase.Case, error)
}

type customerFormUseCaseImpl struct {
	cases     *caseUseCaseImpl
	lifecycle *rmacase.Lifecycle
}

func NewCustomerFormUseCase(uow shared.UnitOfWork, lifecycle *rmacase.Lifecycle, publisher shared.EventPublisher) CustomerFormCommands {
	return &customerFormUseCaseImpl{
		cases: &caseUseCaseImpl{
			uow:       uow,
			lifecycle: lifecycle,
			publisher: publisher,
			logger:    slog.Default().With("component", "customer_form"),
		},
		lifecycle: lifecycle,
	}
}

func (u *customerFormUseCaseImpl) Submit(ctx context.Context, in CustomerFormInput) (*rmacase.Case, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.IssueSummary) == "" {
		return nil, errs.Wrap(errs.ErrDomainValidation, "email and issue summary are required")
	}

	var details json.RawMessage
	if d := strings.TrimSpace(in.IssueDetails); d != "" {
		encoded, err := json.Marshal(map[string]string{"customer_description": d})
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode issue details")
		}
		details = encoded
	}

	c, ev, err := u.lifecycle.Open(rmacase.OpenParams{
		Source:         rmacase.SourceCustomerForm,
		Priority:       rmacase.PriorityNormal,
		IssueSummary:   in.IssueSummary,
		IssueDetails:   details,
		SerialNumber:   in.SerialNumber,
		SKU:            in.SKU,
		Customer:       rmacase.Customer{Name: strings.TrimSpace(in.Name), Email: email, Phone: strings.TrimSpace(in.Phone)},
		OrderReference: in.OrderReference,
		Inbound:        rmacase.Tracking{Carrier: strings.TrimSpace(in.InboundCarrier), TrackingNumber: strings.TrimSpace(in.InboundTrackingNumber)},
	}, "customer:"+email)
	if err != nil {
		return nil, domainErr(err)
	}

	if err := u.cases.insert(ctx, c, ev); err != nil {
		return nil, err
	}
	return c, nil
}
