//go:build unit || e2e

package builder

import (
	"encoding/json"
	"fmt"

	"retail-ops-core/internal/domain/webhook"
)

// ShopifyReturnBuilder produces signed returns/* webhook deliveries.
type ShopifyReturnBuilder struct {
	ReturnID string
	OrderID  int64
	Status   string
	Email    string
	SKU      string
	Serial   string
	Note     string
	Topic    string
}

func NewShopifyReturnBuilder() *ShopifyReturnBuilder {
	return &ShopifyReturnBuilder{
		ReturnID: "R-100",
		OrderID:  5501,
		Status:   "open",
		Email:    "buyer@example.com",
		SKU:      "AMP-200",
		Serial:   "SN-9001",
		Note:     "Crackling in left channel",
		Topic:    "returns/request",
	}
}

func (b *ShopifyReturnBuilder) With(mutate func(*ShopifyReturnBuilder)) *ShopifyReturnBuilder {
	mutate(b)
	return b
}

func (b *ShopifyReturnBuilder) BuildBody() []byte {
	body := map[string]any{
		"id":       b.ReturnID,
		"name":     "#" + b.ReturnID,
		"status":   b.Status,
		"note":     b.Note,
		"order_id": b.OrderID,
		"order":    map[string]any{"id": b.OrderID, "name": fmt.Sprintf("#%d", b.OrderID)},
		"customer": map[string]any{"first_name": "Sam", "last_name": "Lee", "email": b.Email},
		"return_line_items": []map[string]any{{
			"id":            1,
			"quantity":      1,
			"return_reason": "defective",
			"serial_number": b.Serial,
			"line_item":     map[string]any{"sku": b.SKU, "title": "Amplifier"},
		}},
	}
	raw, _ := json.Marshal(body)
	return raw
}

// BuildHeaders signs body with secret the way Shopify does.
func (b *ShopifyReturnBuilder) BuildHeaders(secret string, body []byte) map[string]string {
	return map[string]string{
		"Content-Type":           "application/json",
		webhook.HeaderHmacSHA256: webhook.Sign([]byte(secret), body),
		webhook.HeaderTopic:      b.Topic,
	}
}
