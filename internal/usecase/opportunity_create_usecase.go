package usecase

import (
	"context"
	"strings"
	"time"

	"opocentral/internal/domain/opportunity"
	"opocentral/internal/domain/user"
	"opocentral/internal/ws"

	"github.com/google/uuid"
)

type CreateOpportunityInput struct {
	Title        string
	Description  string
	Company      string
	Location     string
	Type         string
	Requirements []string
	Benefits     []string
	Salary       string
	Duration     string
	Deadline     *time.Time
}

type OpportunityCreateUsecase interface {
	CreateOpportunity(ctx context.Context, userID uuid.UUID, in CreateOpportunityInput) (opportunity.Opportunity, error)
}

type OpportunityCreate struct {
	opportunities opportunity.Repository
	users         user.Repository
	cache         SearchCache
}

func NewOpportunityCreateUsecase(opps opportunity.Repository, users user.Repository, cache SearchCache) *OpportunityCreate {
	return &OpportunityCreate{opportunities: opps, users: users, cache: cache}
}

// CreateOpportunity is restricted to employer accounts. Records are active
// from creation and immutable afterwards.
func (u *OpportunityCreate) CreateOpportunity(ctx context.Context, userID uuid.UUID, in CreateOpportunityInput) (opportunity.Opportunity, error) {
	if userID == uuid.Nil {
		return opportunity.Opportunity{}, ErrUnauthorized
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return opportunity.Opportunity{}, ErrInternal
	}
	if usr.UserType != user.TypeEmpregador {
		return opportunity.Opportunity{}, ErrForbidden
	}

	title := strings.TrimSpace(in.Title)
	typ := strings.TrimSpace(in.Type)
	if title == "" || typ == "" {
		return opportunity.Opportunity{}, ErrInvalidInput
	}

	o := opportunity.Opportunity{
		ID:           uuid.New(),
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Company:      strings.TrimSpace(in.Company),
		Location:     strings.TrimSpace(in.Location),
		Type:         typ,
		Requirements: nonNil(in.Requirements),
		Benefits:     nonNil(in.Benefits),
		Salary:       strings.TrimSpace(in.Salary),
		Duration:     strings.TrimSpace(in.Duration),
		Status:       opportunity.StatusActive,
		Deadline:     in.Deadline,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    &userID,
	}

	if err := u.opportunities.Create(ctx, o); err != nil {
		return opportunity.Opportunity{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, "opportunities:search:*")
	}
	ws.NotifyOpportunitiesUpdated(o.Type)

	return o, nil
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
