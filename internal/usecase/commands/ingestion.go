package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"

	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/domain/webhook"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/shared"
)

const (
	webhookActor          = "webhook:shopify"
	unparsedReturnSummary = "Unparsed return webhook"
)

type ShopifyReturnInput struct {
	Topic     string
	Signature string
	Body      []byte
}

// IngestionResult.Parsed is false when the payload could not be read and a
// minimal case was opened instead.
type IngestionResult struct {
	Case         *rmacase.Case
	Deduplicated bool
	Parsed       bool
	Format       webhook.Format
}

type IngestionCommands interface {
	IngestShopifyReturn(ctx context.Context, in ShopifyReturnInput) (*IngestionResult, error)
}

type ingestionUseCaseImpl struct {
	uow       shared.UnitOfWork
	lifecycle *rmacase.Lifecycle
	publisher shared.EventPublisher
	secret    []byte
	logger    *slog.Logger
}

func NewIngestionUseCase(uow shared.UnitOfWork, lifecycle *rmacase.Lifecycle, publisher shared.EventPublisher, secret string) IngestionCommands {
	return &ingestionUseCaseImpl{
		uow:       uow,
		lifecycle: lifecycle,
		publisher: publisher,
		secret:    []byte(secret),
		logger:    slog.Default().With("component", "webhook_ingestion"),
	}
}

func (u *ingestionUseCaseImpl) IngestShopifyReturn(ctx context.Context, in ShopifyReturnInput) (*IngestionResult, error) {
	if err := webhook.VerifySignature(u.secret, in.Body, in.Signature); err != nil {
		return nil, err
	}

	payload, err := webhook.Parse(in.Topic, in.Body)
	if err != nil {
		u.logger.Warn("accepting unparsed return webhook",
			"topic", in.Topic,
			"bytes", len(in.Body),
			"error", err.Error())
		return u.openUnparsed(ctx, in)
	}

	n := payload.Normalize()
	existing, err := u.findByReturnID(ctx, n.ReturnID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		u.logger.Info("duplicate return webhook", "return_id", n.ReturnID, "case_id", existing.ID.String())
		return &IngestionResult{Case: existing, Deduplicated: true, Parsed: true, Format: payload.Format()}, nil
	}

	details, err := json.Marshal(n)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode parsed webhook")
	}
	returnID := n.ReturnID
	c, ev, err := u.lifecycle.Open(rmacase.OpenParams{
		Source:          rmacase.SourceShopifyReturnWebhook,
		ShopifyReturnID: &returnID,
		Priority:        rmacase.PriorityNormal,
		IssueSummary:    n.Summary(),
		IssueDetails:    details,
		SerialNumber:    n.PrimarySerial,
		SKU:             n.PrimarySKU,
		Customer:        rmacase.Customer{Name: n.Customer.Name, Email: n.Customer.Email, Phone: n.Customer.Phone},
		OrderReference:  n.OrderReference(),
	}, webhookActor)
	if err != nil {
		return nil, domainErr(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cases().Insert(ctx, c); err != nil {
			return err
		}
		return tx.Cases().AppendEvents(ctx, ev)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		// A concurrent delivery of the same return won the insert.
		existing, ferr := u.findByReturnID(ctx, returnID)
		if ferr != nil {
			return nil, ferr
		}
		return &IngestionResult{Case: existing, Deduplicated: true, Parsed: true, Format: payload.Format()}, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}

	publishEvents(ctx, u.publisher, u.logger, ev)
	return &IngestionResult{Case: c, Parsed: true, Format: payload.Format()}, nil
}

func (u *ingestionUseCaseImpl) findByReturnID(ctx context.Context, returnID string) (*rmacase.Case, error) {
	var found *rmacase.Case
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Cases().FindByShopifyReturnID(ctx, returnID)
		if err != nil {
			return err
		}
		found = c
		return nil
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return found, nil
}

// openUnparsed records the delivery so it is not lost; the raw body is kept for a human to read.
func (u *ingestionUseCaseImpl) openUnparsed(ctx context.Context, in ShopifyReturnInput) (*IngestionResult, error) {
	details, err := json.Marshal(map[string]string{
		"format": "unparsed",
		"topic":  in.Topic,
		"raw":    string(in.Body),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode raw webhook")
	}

	c, ev, err := u.lifecycle.Open(rmacase.OpenParams{
		Source:       rmacase.SourceShopifyReturnWebhook,
		Priority:     rmacase.PriorityNormal,
		IssueSummary: unparsedReturnSummary,
		IssueDetails: details,
	}, webhookActor)
	if err != nil {
		return nil, domainErr(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cases().Insert(ctx, c); err != nil {
			return err
		}
		return tx.Cases().AppendEvents(ctx, ev)
	})
	if err != nil {
		return nil, storeErr(err)
	}

	publishEvents(ctx, u.publisher, u.logger, ev)
	return &IngestionResult{Case: c}, nil
}
