package response

import (
	"retail-ops-core/internal/domain/rmacase"
	"retail-ops-core/internal/domain/webhook"
	"retail-ops-core/internal/usecase/commands"
)

type WebhookIngestResponse struct {
	CaseID       string         `json:"case_id"`
	Status       rmacase.Stage  `json:"status"`
	Deduplicated bool           `json:"deduplicated"`
	Parsed       bool           `json:"parsed"`
	Format       webhook.Format `json:"format,omitempty"`
}

func FromIngestionResult(r *commands.IngestionResult) *WebhookIngestResponse {
	res := &WebhookIngestResponse{
		Deduplicated: r.Deduplicated,
		Parsed:       r.Parsed,
		Format:       r.Format,
	}
	if r.Case != nil {
		res.CaseID = r.Case.ID.String()
		res.Status = r.Case.Status
	}
	return res
}

type CustomerFormResponse struct {
	CaseID string        `json:"case_id"`
	Status rmacase.Stage `json:"status"`
}

func FromSubmittedCase(c *rmacase.Case) *CustomerFormResponse {
	return &CustomerFormResponse{CaseID: c.ID.String(), Status: c.Status}
}
