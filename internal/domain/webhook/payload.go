package webhook

import (
	"regexp"
	"strings"
)

// Format discriminates the payload variants a return webhook can arrive in.
type Format string

const (
	FormatJSONV1     Format = "json_v1"
	FormatLegacyText Format = "legacy_text"
)

type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type LineItem struct {
	Index  int    `json:"index"`
	Item   string `json:"item,omitempty"`
	SKU    string `json:"sku,omitempty"`
	Serial string `json:"serial,omitempty"`
	Qty    int    `json:"qty,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Normalized is the provider-independent view of a return event. PrimarySKU and
// PrimarySerial are guesses and may be empty or wrong.
type Normalized struct {
	Format        Format     `json:"format"`
	Topic         string     `json:"topic,omitempty"`
	ReturnID      string     `json:"return_id,omitempty"`
	OrderID       string     `json:"order_id,omitempty"`
	OrderName     string     `json:"order_name,omitempty"`
	ReturnStatus  string     `json:"return_status,omitempty"`
	Customer      Customer   `json:"customer"`
	PrimarySKU    string     `json:"primary_sku,omitempty"`
	PrimarySerial string     `json:"primary_serial,omitempty"`
	ReturnNote    string     `json:"return_note,omitempty"`
	LineItems     []LineItem `json:"line_items,omitempty"`
}

// Payload is implemented only by the variants in this package.
type Payload interface {
	Format() Format
	Normalize() Normalized
	sealed()
}

var serialInText = regexp.MustCompile(`(?i)\b(?:serial(?:\s*(?:no|number))?|s/n|sn)\b\s*[:#=]?\s*([A-Z0-9][A-Z0-9-]{3,})`)

// guessPrimary fills PrimarySKU with the first non-empty line item SKU and PrimarySerial
// with the first non-empty line item serial, then with a serial mentioned in any note.
func guessPrimary(n *Normalized, notes ...string) {
	for _, li := range n.LineItems {
		if n.PrimarySKU == "" && li.SKU != "" {
			n.PrimarySKU = li.SKU
		}
		if n.PrimarySerial == "" && li.Serial != "" {
			n.PrimarySerial = li.Serial
		}
	}
	if n.PrimarySerial != "" {
		return
	}
	for _, text := range notes {
		if m := serialInText.FindStringSubmatch(text); m != nil {
			n.PrimarySerial = strings.ToUpper(m[1])
			return
		}
	}
}

// OrderReference is what staff search by: the order name when known, else the id.
func (n Normalized) OrderReference() string {
	if n.OrderName != "" {
		return n.OrderName
	}
	return n.OrderID
}

// Summary is a one-line case title for the event.
func (n Normalized) Summary() string {
	var b strings.Builder
	b.WriteString("Shopify return")
	if n.ReturnID != "" {
		b.WriteString(" " + n.ReturnID)
	}
	for _, li := range n.LineItems {
		if li.Item != "" {
			b.WriteString(": " + li.Item)
			break
		}
	}
	if n.ReturnNote != "" {
		b.WriteString(" (" + truncate(n.ReturnNote, 80) + ")")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
