package dto

import (
	"opocentral/internal/usecase"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	OpportunityID uuid.UUID `json:"opportunityId"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
	Score         int       `json:"score"`
	Compatibility string    `json:"compatibility"`
}

func NewRecommendationListResponse(items []usecase.RecommendationItem) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendationResponse{
			OpportunityID: it.OpportunityID,
			Title:         it.Title,
			Company:       it.Company,
			Type:          it.Type,
			Location:      it.Location,
			Score:         it.Score,
			Compatibility: it.Compatibility,
		})
	}
	return out
}
