package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/commands"
)

const maxResponseBytes = 1 << 20

type platformTarget struct {
	baseURL    string
	authHeader string
	authValue  string
}

// Client reaches the external commerce and marketing platforms over their REST APIs.
// It never retries; retries are the caller's business and go through the
// idempotency gateway.
type Client struct {
	http    *http.Client
	targets map[commands.Platform]platformTarget
}

var _ commands.OutboundPlatform = (*Client)(nil)

func NewClient(cfg config.OutboundConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	targets := map[commands.Platform]platformTarget{
		commands.PlatformShopify: {baseURL: strings.TrimRight(cfg.ShopifyBaseURL, "/")},
		commands.PlatformKlaviyo: {baseURL: strings.TrimRight(cfg.KlaviyoBaseURL, "/")},
	}
	if cfg.ShopifyToken != "" {
		t := targets[commands.PlatformShopify]
		t.authHeader, t.authValue = "X-Shopify-Access-Token", cfg.ShopifyToken
		targets[commands.PlatformShopify] = t
	}
	if cfg.KlaviyoToken != "" {
		t := targets[commands.PlatformKlaviyo]
		t.authHeader, t.authValue = "Authorization", "Klaviyo-API-Key "+cfg.KlaviyoToken
		targets[commands.PlatformKlaviyo] = t
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		targets: targets,
	}
}

func (c *Client) Do(ctx context.Context, req commands.OutboundRequest) (*commands.OutboundResponse, error) {
	target, ok := c.targets[req.Platform]
	if !ok || target.baseURL == "" {
		return nil, errs.Wrapf(errs.ErrOutboundCallFailed, "platform %q is not configured", req.Platform)
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "encode outbound request"), errs.ErrOutboundCallFailed)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.baseURL+req.Path, body)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build outbound request"), errs.ErrOutboundCallFailed)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if target.authHeader != "" {
		httpReq.Header.Set(target.authHeader, target.authValue)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s %s %s", req.Platform, req.Method, req.Path), errs.ErrOutboundCallFailed)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read outbound response"), errs.ErrOutboundCallFailed)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errs.Wrapf(errs.ErrOutboundCallFailed, "%s %s %s answered %d", req.Platform, req.Method, req.Path, resp.StatusCode)
	}

	return &commands.OutboundResponse{
		StatusCode: resp.StatusCode,
		Body:       asJSON(raw),
	}, nil
}

// asJSON keeps JSON bodies verbatim and quotes anything else as a JSON string.
func asJSON(raw []byte) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return raw
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}
