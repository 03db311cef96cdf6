package dto

import (
	"time"

	"opocentral/internal/domain/opportunity"

	"github.com/google/uuid"
)

type OpportunityResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Requirements []string   `json:"requirements"`
	Benefits     []string   `json:"benefits"`
	Salary       string     `json:"salary,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func NewOpportunityResponse(o opportunity.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:           o.ID,
		Title:        o.Title,
		Description:  o.Description,
		Company:      o.Company,
		Location:     o.Location,
		Type:         o.Type,
		Requirements: o.Requirements,
		Benefits:     o.Benefits,
		Salary:       o.Salary,
		Duration:     o.Duration,
		Deadline:     o.Deadline,
		CreatedAt:    o.CreatedAt,
	}
}

func NewOpportunityListResponse(opps []opportunity.Opportunity) []OpportunityResponse {
	out := make([]OpportunityResponse, 0, len(opps))
	for _, o := range opps {
		out = append(out, NewOpportunityResponse(o))
	}
	return out
}
