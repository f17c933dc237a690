package rmacase

type Stage string

const (
	StageReceived           Stage = "received"
	StageTesting            Stage = "testing"
	StageSentToManufacturer Stage = "sent_to_manufacturer"
	StageRepairedReplaced   Stage = "repaired_replaced"
	StageBackToCustomer     Stage = "back_to_customer"
)

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	_, ok := DefaultGraph.nodes[s]
	return ok
}

func (s Stage) IsTerminal() bool {
	return s == StageBackToCustomer
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourceManual               Source = "manual"
	SourceShopifyReturnWebhook Source = "shopify_return_webhook"
	SourceCustomerForm         Source = "customer_form"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceShopifyReturnWebhook, SourceCustomerForm:
		return true
	default:
		return false
	}
}

type WarrantyStatus string

const (
	WarrantyIn      WarrantyStatus = "in_warranty"
	WarrantyOut     WarrantyStatus = "out_of_warranty"
	WarrantyUnknown WarrantyStatus = "unknown"
)

func (w WarrantyStatus) IsValid() bool {
	switch w {
	case WarrantyIn, WarrantyOut, WarrantyUnknown:
		return true
	default:
		return false
	}
}

// IsDecided excludes unknown; only decided cases count toward the warranty hit-rate.
func (w WarrantyStatus) IsDecided() bool {
	return w == WarrantyIn || w == WarrantyOut
}

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

func (d Direction) IsValid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// TrackingStatusDelivered is the carrier status that triggers stage changes.
const TrackingStatusDelivered = "delivered"
