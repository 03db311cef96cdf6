package usecase

import (
	"context"
	"errors"
	"testing"

	"opocentral/internal/domain/opportunity"
	"opocentral/internal/domain/user"

	"github.com/google/uuid"
)

type mockOpportunityRepo struct {
	items map[uuid.UUID]opportunity.Opportunity
	err   error
}

func (m *mockOpportunityRepo) ListActive(context.Context) ([]opportunity.Opportunity, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]opportunity.Opportunity, 0, len(m.items))
	for _, o := range m.items {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockOpportunityRepo) GetByID(_ context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	if o, ok := m.items[id]; ok {
		return o, nil
	}
	return opportunity.Opportunity{}, opportunity.ErrNotFound
}

func (m *mockOpportunityRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]opportunity.Opportunity, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[uuid.UUID]opportunity.Opportunity{}
	for _, id := range ids {
		if o, ok := m.items[id]; ok {
			out[id] = o
		}
	}
	return out, nil
}

func (m *mockOpportunityRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.items[id]
	return ok, nil
}

func (m *mockOpportunityRepo) Create(_ context.Context, o opportunity.Opportunity) error {
	if m.items == nil {
		m.items = map[uuid.UUID]opportunity.Opportunity{}
	}
	m.items[o.ID] = o
	return nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*user.User
	apps  map[uuid.UUID][]user.Application
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]*user.User{}, apps: map[uuid.UUID][]user.Application{}}
	for i := range users {
		u := users[i]
		m.users[u.ID] = &u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = &u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.users[id]; ok {
		return *u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, userID uuid.UUID, upd user.ProfileUpdate) error {
	u, ok := m.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	if upd.FullName != nil {
		u.Profile.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		u.Profile.Bio = *upd.Bio
	}
	if upd.Location != nil {
		u.Profile.Location = *upd.Location
	}
	if upd.Education != nil {
		u.Profile.Education = *upd.Education
	}
	if upd.Skills != nil {
		u.Profile.Skills = upd.Skills
	}
	if upd.Interests != nil {
		u.Profile.Interests = upd.Interests
	}
	if upd.SocialMedia != nil {
		u.Profile.SocialMedia = *upd.SocialMedia
	}
	return nil
}

func (m *mockUserRepo) AddSavedOpportunity(_ context.Context, userID, opportunityID uuid.UUID) error {
	u, ok := m.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	for _, id := range u.Profile.SavedOpportunities {
		if id == opportunityID {
			return nil
		}
	}
	u.Profile.SavedOpportunities = append(u.Profile.SavedOpportunities, opportunityID)
	return nil
}

func (m *mockUserRepo) AddApplication(_ context.Context, userID uuid.UUID, app user.Application) error {
	if _, ok := m.users[userID]; !ok {
		return user.ErrNotFound
	}
	for _, a := range m.apps[userID] {
		if a.OpportunityID == app.OpportunityID {
			return user.ErrDuplicateApplication
		}
	}
	m.apps[userID] = append(m.apps[userID], app)
	return nil
}

func (m *mockUserRepo) ListApplications(_ context.Context, userID uuid.UUID) ([]user.Application, error) {
	return m.apps[userID], nil
}

func sampleOpportunity(id uuid.UUID, title string) opportunity.Opportunity {
	return opportunity.Opportunity{ID: id, Title: title, Company: "Tech Olinda", Type: "Estágio", Status: opportunity.StatusActive}
}

func TestTracker_Save_Idempotent(t *testing.T) {
	userID := uuid.New()
	oppID := uuid.New()

	opps := &mockOpportunityRepo{items: map[uuid.UUID]opportunity.Opportunity{oppID: sampleOpportunity(oppID, "Estágio em Desenvolvimento Web")}}
	users := newMockUserRepo(user.User{ID: userID, Profile: user.EmptyProfile()})
	uc := NewTrackerUsecase(opps, users)

	saved, err := uc.Save(context.Background(), userID, oppID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(saved) != 1 || saved[0] != oppID {
		t.Fatalf("expected saved=[%s], got %v", oppID, saved)
	}

	saved, err = uc.Save(context.Background(), userID, oppID)
	if err != nil {
		t.Fatalf("second save should be a no-op, got err: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved id after repeat save, got %d", len(saved))
	}
}

func TestTracker_Save_UnknownOpportunity(t *testing.T) {
	userID := uuid.New()
	users := newMockUserRepo(user.User{ID: userID, Profile: user.EmptyProfile()})
	uc := NewTrackerUsecase(&mockOpportunityRepo{}, users)

	_, err := uc.Save(context.Background(), userID, uuid.New())
	if !errors.Is(err, ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestTracker_Apply_DuplicateLeavesStateUnchanged(t *testing.T) {
	userID := uuid.New()
	oppID := uuid.New()

	opps := &mockOpportunityRepo{items: map[uuid.UUID]opportunity.Opportunity{oppID: sampleOpportunity(oppID, "Curso de Marketing Digital")}}
	users := newMockUserRepo(user.User{ID: userID, Profile: user.EmptyProfile()})
	uc := NewTrackerUsecase(opps, users)

	app, err := uc.Apply(context.Background(), userID, oppID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != user.ApplicationStatusPending {
		t.Fatalf("expected pending status, got %q", app.Status)
	}
	if app.AppliedAt.IsZero() {
		t.Fatalf("expected appliedAt to be set")
	}

	_, err = uc.Apply(context.Background(), userID, oppID)
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(users.apps[userID]) != 1 {
		t.Fatalf("duplicate apply must not add a record, got %d", len(users.apps[userID]))
	}
}

func TestTracker_Apply_UnknownOpportunity(t *testing.T) {
	userID := uuid.New()
	users := newMockUserRepo(user.User{ID: userID, Profile: user.EmptyProfile()})
	uc := NewTrackerUsecase(&mockOpportunityRepo{}, users)

	_, err := uc.Apply(context.Background(), userID, uuid.New())
	if !errors.Is(err, ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestTracker_ListApplications_JoinsAndTolerantOfVanished(t *testing.T) {
	userID := uuid.New()
	liveID := uuid.New()
	goneID := uuid.New()

	opps := &mockOpportunityRepo{items: map[uuid.UUID]opportunity.Opportunity{liveID: sampleOpportunity(liveID, "Jovem Aprendiz Administrativo")}}
	users := newMockUserRepo(user.User{ID: userID, Profile: user.EmptyProfile()})
	uc := NewTrackerUsecase(opps, users)

	if _, err := uc.Apply(context.Background(), userID, liveID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	users.apps[userID] = append(users.apps[userID], user.Application{OpportunityID: goneID, Status: user.ApplicationStatusPending})

	views, err := uc.ListApplications(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Opportunity == nil || views[0].Opportunity.Title != "Jovem Aprendiz Administrativo" {
		t.Fatalf("expected joined opportunity for live application, got %+v", views[0].Opportunity)
	}
	if views[1].Opportunity != nil {
		t.Fatalf("expected nil snapshot for vanished opportunity")
	}
}

func TestTracker_ListSaved_SkipsVanished(t *testing.T) {
	userID := uuid.New()
	liveID := uuid.New()
	goneID := uuid.New()

	opps := &mockOpportunityRepo{items: map[uuid.UUID]opportunity.Opportunity{liveID: sampleOpportunity(liveID, "Voluntariado em Educação Infantil")}}
	u := user.User{ID: userID, Profile: user.EmptyProfile()}
	u.Profile.SavedOpportunities = []uuid.UUID{liveID, goneID}
	users := newMockUserRepo(u)
	uc := NewTrackerUsecase(opps, users)

	saved, err := uc.ListSaved(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != liveID {
		t.Fatalf("expected only the live opportunity, got %+v", saved)
	}
}
