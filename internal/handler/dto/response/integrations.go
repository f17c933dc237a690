package response

import (
	"encoding/json"

	"retail-ops-core/internal/usecase/commands"
)

type IntegrationResponse struct {
	Platform   string          `json:"platform"`
	Operation  string          `json:"operation"`
	StatusCode int             `json:"status_code"`
	Accepted   bool            `json:"accepted"`
	Response   json.RawMessage `json:"response,omitempty" swaggertype:"object"`
}

func FromIntegrationResult(r *commands.IntegrationResult) *IntegrationResponse {
	return &IntegrationResponse{
		Platform:   string(r.Platform),
		Operation:  r.Operation,
		StatusCode: r.StatusCode,
		Accepted:   r.StatusCode >= 200 && r.StatusCode < 300,
		Response:   r.Response,
	}
}
