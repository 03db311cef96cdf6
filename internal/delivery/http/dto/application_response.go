package dto

import (
	"time"

	"opocentral/internal/usecase"

	"github.com/google/uuid"
)

type ApplicationOpportunity struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Type    string `json:"type"`
}

type ApplicationResponse struct {
	OpportunityID uuid.UUID               `json:"opportunityId"`
	Status        string                  `json:"status"`
	AppliedAt     time.Time               `json:"appliedAt"`
	Opportunity   *ApplicationOpportunity `json:"opportunity"`
}

func NewApplicationListResponse(views []usecase.ApplicationView) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(views))
	for _, v := range views {
		res := ApplicationResponse{
			OpportunityID: v.OpportunityID,
			Status:        v.Status,
			AppliedAt:     v.AppliedAt,
		}
		if v.Opportunity != nil {
			res.Opportunity = &ApplicationOpportunity{
				Title:   v.Opportunity.Title,
				Company: v.Opportunity.Company,
				Type:    v.Opportunity.Type,
			}
		}
		out = append(out, res)
	}
	return out
}
