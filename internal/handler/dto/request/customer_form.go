package request

import (
	"retail-ops-core/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// CustomerFormRequest is the public return form. Field names mirror
// commands.CustomerFormInput so the two can be copied field by field.
type CustomerFormRequest struct {
	Name                  string `json:"name" binding:"required,max=200"`
	Email                 string `json:"email" binding:"required,email,max=320"`
	Phone                 string `json:"phone" binding:"max=50"`
	OrderReference        string `json:"order_reference" binding:"max=200"`
	SKU                   string `json:"sku" binding:"max=200"`
	SerialNumber          string `json:"serial_number" binding:"max=200"`
	IssueSummary          string `json:"issue_summary" binding:"required,max=500"`
	IssueDetails          string `json:"issue_details" binding:"max=8000"`
	InboundCarrier        string `json:"inbound_carrier" binding:"max=100"`
	InboundTrackingNumber string `json:"inbound_tracking_number" binding:"max=200"`
}

func (r *CustomerFormRequest) ToInput() (commands.CustomerFormInput, error) {
	var in commands.CustomerFormInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.CustomerFormInput{}, err
	}
	return in, nil
}
