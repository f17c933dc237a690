package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"retail-ops-core/internal/pkg/errs"
)

type Platform string

const (
	PlatformShopify Platform = "shopify"
	PlatformKlaviyo Platform = "klaviyo"
)

type OutboundRequest struct {
	Platform Platform
	Method   string
	Path     string
	Body     any
}

type OutboundResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// OutboundPlatform performs one retry-unsafe call against an external platform.
// Transport failures and 5xx answers are returned as errors marked ErrOutboundCallFailed.
type OutboundPlatform interface {
	Do(ctx context.Context, req OutboundRequest) (*OutboundResponse, error)
}

type ShopifyImportInput struct {
	CollectionID string
	SKUs         []string
	Overwrite    bool
}

type ProductSyncInput struct {
	Title      string
	PriceCents *int64
	Quantity   *int
	Status     string
}

type KlaviyoCampaignInput struct {
	Name      string
	Subject   string
	ListID    string
	HTMLBody  string
	SendAfter string
}

type IntegrationResult struct {
	Platform   Platform        `json:"platform"`
	Operation  string          `json:"operation"`
	StatusCode int             `json:"status_code"`
	Response   json.RawMessage `json:"response,omitempty"`
}

type IntegrationCommands interface {
	ImportShopifyProducts(ctx context.Context, in ShopifyImportInput) (*IntegrationResult, error)
	SyncShopifyProduct(ctx context.Context, sku string, in ProductSyncInput) (*IntegrationResult, error)
	PushKlaviyoCampaign(ctx context.Context, in KlaviyoCampaignInput) (*IntegrationResult, error)
}

type integrationUseCaseImpl struct {
	platform OutboundPlatform
}

func NewIntegrationUseCase(platform OutboundPlatform) IntegrationCommands {
	return &integrationUseCaseImpl{platform: platform}
}

func (u *integrationUseCaseImpl) ImportShopifyProducts(ctx context.Context, in ShopifyImportInput) (*IntegrationResult, error) {
	if strings.TrimSpace(in.CollectionID) == "" && len(in.SKUs) == 0 {
		return nil, errs.Wrap(errs.ErrDomainValidation, "collection_id or skus required")
	}
	return u.call(ctx, "products.import", OutboundRequest{
		Platform: PlatformShopify,
		Method:   http.MethodPost,
		Path:     "/products/import",
		Body: map[string]any{
			"collection_id": strings.TrimSpace(in.CollectionID),
			"skus":          in.SKUs,
			"overwrite":     in.Overwrite,
		},
	})
}

func (u *integrationUseCaseImpl) SyncShopifyProduct(ctx context.Context, sku string, in ProductSyncInput) (*IntegrationResult, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, errs.Wrap(errs.ErrDomainValidation, "sku required")
	}
	body := map[string]any{"sku": sku}
	if in.Title != "" {
		body["title"] = in.Title
	}
	if in.PriceCents != nil {
		body["price_cents"] = *in.PriceCents
	}
	if in.Quantity != nil {
		body["inventory_quantity"] = *in.Quantity
	}
	if in.Status != "" {
		body["status"] = in.Status
	}
	if len(body) == 1 {
		return nil, errs.Wrap(errs.ErrDomainValidation, "nothing to sync")
	}
	return u.call(ctx, "product.sync", OutboundRequest{
		Platform: PlatformShopify,
		Method:   http.MethodPut,
		Path:     "/products/" + url.PathEscape(sku),
		Body:     body,
	})
}

func (u *integrationUseCaseImpl) PushKlaviyoCampaign(ctx context.Context, in KlaviyoCampaignInput) (*IntegrationResult, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ListID) == "" {
		return nil, errs.Wrap(errs.ErrDomainValidation, "name and list_id required")
	}
	return u.call(ctx, "campaign.push", OutboundRequest{
		Platform: PlatformKlaviyo,
		Method:   http.MethodPost,
		Path:     "/campaigns",
		Body: map[string]any{
			"name":       in.Name,
			"subject":    in.Subject,
			"list_id":    in.ListID,
			"html_body":  in.HTMLBody,
			"send_after": in.SendAfter,
		},
	})
}

func (u *integrationUseCaseImpl) call(ctx context.Context, operation string, req OutboundRequest) (*IntegrationResult, error) {
	resp, err := u.platform.Do(ctx, req)
	if err != nil {
		if errs.Is(err, errs.ErrOutboundCallFailed) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrOutboundCallFailed)
	}
	return &IntegrationResult{
		Platform:   req.Platform,
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Response:   resp.Body,
	}, nil
}
