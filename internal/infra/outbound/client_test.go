//go:build unit

package outbound_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retail-ops-core/internal/infra/outbound"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/internal/pkg/errs"
	"retail-ops-core/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do(t *testing.T) {
	var gotPath, gotToken, gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		switch r.URL.Path {
		case "/shopify/products/AMP-200":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"product":{"sku":"AMP-200"}}`))
		case "/shopify/products/import":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`collection not found`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	client := outbound.NewClient(config.OutboundConfig{
		ShopifyBaseURL: srv.URL + "/shopify/",
		ShopifyToken:   "shpat_test",
		Timeout:        time.Second,
	})
	ctx := context.Background()

	t.Run("json response passes through", func(t *testing.T) {
		resp, err := client.Do(ctx, commands.OutboundRequest{
			Platform: commands.PlatformShopify,
			Method:   http.MethodPut,
			Path:     "/products/AMP-200",
			Body:     map[string]any{"sku": "AMP-200", "title": "Amp"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"product":{"sku":"AMP-200"}}`, string(resp.Body))
		assert.Equal(t, "PUT /shopify/products/AMP-200", gotPath)
		assert.Equal(t, "shpat_test", gotToken)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "Amp", gotBody["title"])
	})

	t.Run("4xx is an answer, not a failure", func(t *testing.T) {
		resp, err := client.Do(ctx, commands.OutboundRequest{
			Platform: commands.PlatformShopify, Method: http.MethodPost, Path: "/products/import",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, `"collection not found"`, string(resp.Body))
	})

	t.Run("5xx is a failure", func(t *testing.T) {
		_, err := client.Do(ctx, commands.OutboundRequest{
			Platform: commands.PlatformShopify, Method: http.MethodGet, Path: "/unknown",
		})
		assert.True(t, errs.Is(err, errs.ErrOutboundCallFailed))
	})

	t.Run("unconfigured platform", func(t *testing.T) {
		_, err := client.Do(ctx, commands.OutboundRequest{Platform: commands.PlatformKlaviyo, Method: http.MethodPost, Path: "/campaigns"})
		assert.True(t, errs.Is(err, errs.ErrOutboundCallFailed))
	})
}
