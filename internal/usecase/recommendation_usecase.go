package usecase

import (
	"context"

	"opocentral/internal/domain/opportunity"
	"opocentral/internal/domain/recommend"
	"opocentral/internal/domain/user"

	"github.com/google/uuid"
)

type RecommendationItem struct {
	OpportunityID uuid.UUID
	Title         string
	Company       string
	Type          string
	Location      string
	Score         int
	Compatibility string
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]RecommendationItem, error)
}

type Recommendation struct {
	opportunities opportunity.Repository
	users         user.Repository
}

func NewRecommendationUsecase(opps opportunity.Repository, users user.Repository) *Recommendation {
	return &Recommendation{opportunities: opps, users: users}
}

// GetRecommendations ranks the active opportunity list against the caller's
// profile and returns the scorer's top picks.
func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]RecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	opps, err := u.opportunities.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if len(opps) == 0 {
		return []RecommendationItem{}, nil
	}

	byID := make(map[uuid.UUID]opportunity.Opportunity, len(opps))
	candidates := make([]recommend.Candidate, 0, len(opps))
	for _, o := range opps {
		byID[o.ID] = o
		candidates = append(candidates, recommend.Candidate{
			ID:           o.ID,
			Type:         o.Type,
			Location:     o.Location,
			Requirements: o.Requirements,
		})
	}

	ranked := recommend.Rank(recommend.Profile{
		Location:           usr.Profile.Location,
		Skills:             usr.Profile.Skills,
		Interests:          usr.Profile.Interests,
		SavedOpportunities: usr.Profile.SavedOpportunities,
	}, candidates)

	out := make([]RecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		o := byID[r.ID]
		out = append(out, RecommendationItem{
			OpportunityID: o.ID,
			Title:         o.Title,
			Company:       o.Company,
			Type:          o.Type,
			Location:      o.Location,
			Score:         r.Score,
			Compatibility: r.Compatibility,
		})
	}
	return out, nil
}
