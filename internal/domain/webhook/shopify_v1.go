package webhook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// flexID accepts Shopify ids sent either as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type shopifyCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type shopifyLineItem struct {
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	VariantTitle string `json:"variant_title"`
}

type shopifyReturnLineItem struct {
	ID                  flexID `json:"id"`
	Quantity            int    `json:"quantity"`
	ReturnReason        string `json:"return_reason"`
	ReturnReasonNote    string `json:"return_reason_note"`
	CustomerNote        string `json:"customer_note"`
	Serial              string `json:"serial_number"`
	FulfillmentLineItem struct {
		LineItem shopifyLineItem `json:"line_item"`
	} `json:"fulfillment_line_item"`
	LineItem *shopifyLineItem `json:"line_item"`
}

type shopifyOrder struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// ReturnV1 is the structured JSON body of Shopify's returns/* webhooks.
type ReturnV1 struct {
	Topic           string                  `json:"-"`
	ID              flexID                  `json:"id"`
	AdminGraphQLID  string                  `json:"admin_graphql_api_id"`
	Name            string                  `json:"name"`
	Status          string                  `json:"status"`
	Note            string                  `json:"note"`
	OrderID         flexID                  `json:"order_id"`
	Order           *shopifyOrder           `json:"order"`
	Customer        *shopifyCustomer        `json:"customer"`
	ReturnLineItems []shopifyReturnLineItem `json:"return_line_items"`
}

func (*ReturnV1) Format() Format { return FormatJSONV1 }
func (*ReturnV1) sealed()        {}

// ReturnID prefers the numeric id and falls back to the GraphQL gid.
func (r *ReturnV1) ReturnID() string {
	if r.ID != "" {
		return string(r.ID)
	}
	return strings.TrimSpace(r.AdminGraphQLID)
}

func (r *ReturnV1) Normalize() Normalized {
	n := Normalized{
		Format:       FormatJSONV1,
		Topic:        r.Topic,
		ReturnID:     r.ReturnID(),
		OrderID:      string(r.OrderID),
		ReturnStatus: strings.ToLower(strings.TrimSpace(r.Status)),
		ReturnNote:   strings.TrimSpace(r.Note),
	}
	if r.Order != nil {
		if n.OrderID == "" {
			n.OrderID = string(r.Order.ID)
		}
		n.OrderName = strings.TrimSpace(r.Order.Name)
	}
	if r.Customer != nil {
		n.Customer = Customer{
			Name:  strings.TrimSpace(r.Customer.FirstName + " " + r.Customer.LastName),
			Email: strings.ToLower(strings.TrimSpace(r.Customer.Email)),
			Phone: strings.TrimSpace(r.Customer.Phone),
		}
	}

	notes := []string{n.ReturnNote}
	for i, rli := range r.ReturnLineItems {
		li := rli.FulfillmentLineItem.LineItem
		if rli.LineItem != nil {
			li = *rli.LineItem
		}
		item := strings.TrimSpace(li.Title)
		if v := strings.TrimSpace(li.VariantTitle); v != "" && item != "" {
			item += " - " + v
		}
		reason := strings.TrimSpace(rli.ReturnReason)
		if note := strings.TrimSpace(rli.ReturnReasonNote); note != "" {
			notes = append(notes, note)
		}
		if note := strings.TrimSpace(rli.CustomerNote); note != "" {
			notes = append(notes, note)
			if n.ReturnNote == "" {
				n.ReturnNote = note
			}
		}
		n.LineItems = append(n.LineItems, LineItem{
			Index:  i + 1,
			Item:   item,
			SKU:    strings.TrimSpace(li.SKU),
			Serial: strings.TrimSpace(rli.Serial),
			Qty:    rli.Quantity,
			Reason: reason,
		})
	}
	guessPrimary(&n, notes...)
	return n
}

// parseReturnV1 reports ok=false when body is not a JSON object carrying a return id.
func parseReturnV1(topic string, body []byte) (*ReturnV1, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var r ReturnV1
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return nil, false
	}
	if r.ReturnID() == "" {
		return nil, false
	}
	r.Topic = topic
	return &r, true
}
