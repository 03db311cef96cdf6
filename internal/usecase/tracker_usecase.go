package usecase

import (
	"context"
	"errors"
	"time"

	"opocentral/internal/domain/opportunity"
	"opocentral/internal/domain/user"

	"github.com/google/uuid"
)

// OpportunitySnapshot is the read-time join of an application with its
// opportunity. Nil when the opportunity no longer exists; the application
// record itself is still returned.
type OpportunitySnapshot struct {
	Title   string
	Company string
	Type    string
}

type ApplicationView struct {
	user.Application
	Opportunity *OpportunitySnapshot
}

type TrackerUsecase interface {
	Save(ctx context.Context, userID, opportunityID uuid.UUID) ([]uuid.UUID, error)
	ListSaved(ctx context.Context, userID uuid.UUID) ([]opportunity.Opportunity, error)
	Apply(ctx context.Context, userID, opportunityID uuid.UUID) (user.Application, error)
	ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationView, error)
}

type Tracker struct {
	opportunities opportunity.Repository
	users         user.Repository

	now func() time.Time
}

func NewTrackerUsecase(opps opportunity.Repository, users user.Repository) *Tracker {
	return &Tracker{opportunities: opps, users: users, now: time.Now}
}

// Save adds the opportunity to the user's saved set. Saving an already-saved
// opportunity is a no-op, not an error.
func (t *Tracker) Save(ctx context.Context, userID, opportunityID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	exists, err := t.opportunities.ExistsByID(ctx, opportunityID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrOpportunityNotFound
	}

	if err := t.users.AddSavedOpportunity(ctx, userID, opportunityID); err != nil {
		return nil, ErrInternal
	}

	usr, err := t.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return usr.Profile.SavedOpportunities, nil
}

// ListSaved resolves the saved ids against the store. Ids whose opportunity
// has vanished are skipped.
func (t *Tracker) ListSaved(ctx context.Context, userID uuid.UUID) ([]opportunity.Opportunity, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	usr, err := t.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	saved := usr.Profile.SavedOpportunities
	if len(saved) == 0 {
		return []opportunity.Opportunity{}, nil
	}

	byID, err := t.opportunities.GetByIDs(ctx, saved)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]opportunity.Opportunity, 0, len(saved))
	for _, id := range saved {
		if o, ok := byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

// Apply records a pending application. A second application to the same
// opportunity fails with ErrDuplicateApplication and changes nothing.
func (t *Tracker) Apply(ctx context.Context, userID, opportunityID uuid.UUID) (user.Application, error) {
	if userID == uuid.Nil {
		return user.Application{}, ErrUnauthorized
	}

	exists, err := t.opportunities.ExistsByID(ctx, opportunityID)
	if err != nil {
		return user.Application{}, ErrInternal
	}
	if !exists {
		return user.Application{}, ErrOpportunityNotFound
	}

	app := user.Application{
		OpportunityID: opportunityID,
		Status:        user.ApplicationStatusPending,
		AppliedAt:     t.now().UTC(),
	}

	if err := t.users.AddApplication(ctx, userID, app); err != nil {
		if errors.Is(err, user.ErrDuplicateApplication) {
			return user.Application{}, ErrDuplicateApplication
		}
		return user.Application{}, ErrInternal
	}

	return app, nil
}

// ListApplications joins each application with its opportunity at read time,
// so the view reflects current opportunity data.
func (t *Tracker) ListApplications(ctx context.Context, userID uuid.UUID) ([]ApplicationView, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	apps, err := t.users.ListApplications(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(apps) == 0 {
		return []ApplicationView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.OpportunityID)
	}

	byID, err := t.opportunities.GetByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		view := ApplicationView{Application: a}
		if o, ok := byID[a.OpportunityID]; ok {
			view.Opportunity = &OpportunitySnapshot{Title: o.Title, Company: o.Company, Type: o.Type}
		}
		out = append(out, view)
	}
	return out, nil
}
