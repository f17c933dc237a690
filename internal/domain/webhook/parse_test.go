//go:build unit

package webhook_test

import (
	"testing"

	"retail-ops-core/internal/domain/webhook"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopifyReturnJSON = `{
  "id": 9310371,
  "admin_graphql_api_id": "gid://shopify/Return/9310371",
  "name": "#1042-R1",
  "status": "REQUESTED",
  "order": {"id": 5512, "name": "#1042"},
  "customer": {"first_name": "Ada", "last_name": "Lovelace", "email": "Ada@Example.com", "phone": "+44 20 7946 0000"},
  "return_line_items": [
    {
      "id": 1,
      "quantity": 1,
      "return_reason": "DEFECTIVE",
      "customer_note": "Fan rattles. S/N: ab12-9981 on the sticker",
      "fulfillment_line_item": {"line_item": {"sku": "", "title": "Gift wrap"}}
    },
    {
      "id": 2,
      "quantity": 2,
      "return_reason": "OTHER",
      "fulfillment_line_item": {"line_item": {"sku": "AMP-200", "title": "Amplifier", "variant_title": "Black"}}
    }
  ]
}`

func TestParse_ShopifyJSON(t *testing.T) {
	p, err := webhook.Parse("returns/request", []byte(shopifyReturnJSON))
	require.NoError(t, err)
	require.Equal(t, webhook.FormatJSONV1, p.Format())

	n := p.Normalize()
	want := webhook.Normalized{
		Format:        webhook.FormatJSONV1,
		Topic:         "returns/request",
		ReturnID:      "9310371",
		OrderID:       "5512",
		OrderName:     "#1042",
		ReturnStatus:  "requested",
		Customer:      webhook.Customer{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 7946 0000"},
		PrimarySKU:    "AMP-200",
		PrimarySerial: "AB12-9981",
		ReturnNote:    "Fan rattles. S/N: ab12-9981 on the sticker",
		LineItems: []webhook.LineItem{
			{Index: 1, Item: "Gift wrap", Qty: 1, Reason: "DEFECTIVE"},
			{Index: 2, Item: "Amplifier - Black", SKU: "AMP-200", Qty: 2, Reason: "OTHER"},
		},
	}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#1042", n.OrderReference())
}

func TestParse_StringIDAndGraphQLFallback(t *testing.T) {
	p, err := webhook.Parse("", []byte(`{"id":"R-100","status":"open"}`))
	require.NoError(t, err)
	assert.Equal(t, "R-100", p.Normalize().ReturnID)

	p, err = webhook.Parse("", []byte(`{"admin_graphql_api_id":"gid://shopify/Return/7"}`))
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Return/7", p.Normalize().ReturnID)
}

func TestParse_LegacyText(t *testing.T) {
	body := "Return ID: R-77 | Order: 1001\n" +
		"status: Received\n" +
		"customer: Grace Hopper\n" +
		"email: GRACE@example.com\n" +
		"note: unit arrived with cracked case\n" +
		"item 1: Tube preamp | sku=PRE-1 | serial=SN-555 | qty=1 | reason=damaged\n" +
		"this line has no separator\n"

	p, err := webhook.Parse("returns/close", []byte(body))
	require.NoError(t, err)
	require.Equal(t, webhook.FormatLegacyText, p.Format())

	n := p.Normalize()
	assert.Equal(t, "R-77", n.ReturnID)
	assert.Equal(t, "1001", n.OrderID)
	assert.Equal(t, "received", n.ReturnStatus)
	assert.Equal(t, "returns/close", n.Topic)
	assert.Equal(t, webhook.Customer{Name: "Grace Hopper", Email: "grace@example.com"}, n.Customer)
	assert.Equal(t, "PRE-1", n.PrimarySKU)
	assert.Equal(t, "SN-555", n.PrimarySerial)
	require.Len(t, n.LineItems, 1)
	assert.Equal(t, webhook.LineItem{Index: 1, Item: "Tube preamp", SKU: "PRE-1", Serial: "SN-555", Qty: 1, Reason: "damaged"}, n.LineItems[0])
}

func TestParse_Unrecognized(t *testing.T) {
	for _, body := range []string{``, `{"foo":"bar"}`, `not json at all`, `[1,2,3]`} {
		_, err := webhook.Parse("returns/request", []byte(body))
		assert.ErrorIs(t, err, webhook.ErrUnrecognizedPayload, "body %q", body)
	}
}

func TestFormatLegacy_RoundTrip(t *testing.T) {
	p, err := webhook.Parse("returns/request", []byte(shopifyReturnJSON))
	require.NoError(t, err)
	original := p.Normalize()
	original.ReturnNote = "multi\nline | note"

	text := webhook.FormatLegacy(original)
	reparsed := webhook.ParseLegacyText(text).Normalize()

	assert.Equal(t, webhook.FormatLegacyText, reparsed.Format)
	assert.Equal(t, "multi line / note", reparsed.ReturnNote)
	original.ReturnNote = reparsed.ReturnNote
	if diff := cmp.Diff(original, reparsed, cmpopts.IgnoreFields(webhook.Normalized{}, "Format")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalized_Summary(t *testing.T) {
	n := webhook.Normalized{ReturnID: "R-1", LineItems: []webhook.LineItem{{Item: "Amp"}}, ReturnNote: "hums"}
	assert.Equal(t, "Shopify return R-1: Amp (hums)", n.Summary())
}
