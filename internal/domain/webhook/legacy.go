package webhook

import (
	"strconv"
	"strings"
)

// LegacyText is the human-readable return record that predates the JSON webhook:
// one "key: value" pair per line (or several per line separated by " | "), with
// line items written as "item N: title | sku=.. | serial=.. | qty=.. | reason=..".
type LegacyText struct {
	Fields map[string]string
	Items  []LineItem
}

func (*LegacyText) Format() Format { return FormatLegacyText }
func (*LegacyText) sealed()        {}

var legacyAliases = map[string]string{
	"return":         "return_id",
	"return_id":      "return_id",
	"rma":            "return_id",
	"order":          "order_id",
	"order_id":       "order_id",
	"order_name":     "order_name",
	"status":         "status",
	"return_status":  "status",
	"topic":          "topic",
	"customer":       "customer_name",
	"customer_name":  "customer_name",
	"name":           "customer_name",
	"email":          "customer_email",
	"customer_email": "customer_email",
	"phone":          "customer_phone",
	"customer_phone": "customer_phone",
	"sku":            "sku",
	"serial":         "serial",
	"serial_number":  "serial",
	"note":           "note",
	"notes":          "note",
	"return_note":    "note",
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	if canonical, ok := legacyAliases[k]; ok {
		return canonical
	}
	return k
}

// ParseLegacyText never fails; unknown keys are kept in Fields and malformed
// lines are skipped.
func ParseLegacyText(text string) *LegacyText {
	lt := &LegacyText{Fields: map[string]string{}}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if item, ok := parseLegacyItem(line, len(lt.Items)+1); ok {
			lt.Items = append(lt.Items, item)
			continue
		}
		for _, part := range strings.Split(line, "|") {
			key, value, ok := strings.Cut(part, ":")
			if !ok {
				continue
			}
			key = normalizeKey(key)
			value = strings.TrimSpace(value)
			if key == "" || value == "" {
				continue
			}
			if _, seen := lt.Fields[key]; !seen {
				lt.Fields[key] = value
			}
		}
	}
	return lt
}

func parseLegacyItem(line string, next int) (LineItem, bool) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return LineItem{}, false
	}
	label := strings.Fields(strings.ToLower(head))
	if len(label) == 0 || label[0] != "item" {
		return LineItem{}, false
	}
	item := LineItem{Index: next}
	if len(label) > 1 {
		if n, err := strconv.Atoi(label[1]); err == nil && n > 0 {
			item.Index = n
		}
	}

	parts := strings.Split(rest, "|")
	item.Item = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch normalizeKey(key) {
		case "sku":
			item.SKU = value
		case "serial":
			item.Serial = value
		case "qty", "quantity":
			item.Qty, _ = strconv.Atoi(value)
		case "reason":
			item.Reason = value
		}
	}
	return item, true
}

// ReturnID is empty when the text carries none.
func (l *LegacyText) ReturnID() string {
	return l.Fields["return_id"]
}

func (l *LegacyText) Normalize() Normalized {
	n := Normalized{
		Format:        FormatLegacyText,
		Topic:         l.Fields["topic"],
		ReturnID:      l.Fields["return_id"],
		OrderID:       l.Fields["order_id"],
		OrderName:     l.Fields["order_name"],
		ReturnStatus:  strings.ToLower(l.Fields["status"]),
		Customer:      Customer{Name: l.Fields["customer_name"], Email: strings.ToLower(l.Fields["customer_email"]), Phone: l.Fields["customer_phone"]},
		PrimarySKU:    l.Fields["sku"],
		PrimarySerial: l.Fields["serial"],
		ReturnNote:    l.Fields["note"],
		LineItems:     append([]LineItem(nil), l.Items...),
	}
	guessPrimary(&n, n.ReturnNote)
	return n
}

// FormatLegacy renders a normalized return in the legacy text layout. Parsing the
// output with ParseLegacyText yields the same Normalized fields.
func FormatLegacy(n Normalized) string {
	var b strings.Builder
	line := func(key, value string) {
		if value = legacyValue(value); value != "" {
			b.WriteString(key + ": " + value + "\n")
		}
	}
	line("topic", n.Topic)
	line("return_id", n.ReturnID)
	line("order_id", n.OrderID)
	line("order_name", n.OrderName)
	line("status", n.ReturnStatus)
	line("customer_name", n.Customer.Name)
	line("customer_email", n.Customer.Email)
	line("customer_phone", n.Customer.Phone)
	line("sku", n.PrimarySKU)
	line("serial", n.PrimarySerial)
	line("note", n.ReturnNote)
	for _, li := range n.LineItems {
		b.WriteString("item " + strconv.Itoa(li.Index) + ": " + legacyValue(li.Item))
		if li.SKU != "" {
			b.WriteString(" | sku=" + li.SKU)
		}
		if li.Serial != "" {
			b.WriteString(" | serial=" + li.Serial)
		}
		if li.Qty != 0 {
			b.WriteString(" | qty=" + strconv.Itoa(li.Qty))
		}
		if li.Reason != "" {
			b.WriteString(" | reason=" + legacyValue(li.Reason))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// legacyValue strips the separators the layout reserves.
func legacyValue(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ", "|", "/").Replace(s))
}
