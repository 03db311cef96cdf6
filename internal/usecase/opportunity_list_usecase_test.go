package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"opocentral/internal/domain/opportunity"
	"opocentral/internal/search"

	"github.com/google/uuid"
)

type mockSearchCache struct {
	store map[string][]byte
	sets  int
}

func newMockSearchCache() *mockSearchCache {
	return &mockSearchCache{store: map[string][]byte{}}
}

func (m *mockSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	m.sets++
	return nil
}

func (m *mockSearchCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *mockSearchCache) DeleteByPattern(_ context.Context, _ string) error {
	m.store = map[string][]byte{}
	return nil
}

func (m *mockSearchCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := m.store[key]; ok {
		return false, nil
	}
	m.store[key] = []byte(value)
	return true, nil
}

func listFixture() map[uuid.UUID]opportunity.Opportunity {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []opportunity.Opportunity{
		{ID: uuid.New(), Title: "Estágio em Desenvolvimento Web", Company: "Tech Olinda", Location: "Olinda", Type: "Estágio", Status: opportunity.StatusActive, CreatedAt: base},
		{ID: uuid.New(), Title: "Curso de Marketing Digital", Company: "Instituto Crescer", Location: "Olinda", Type: "Curso", Status: opportunity.StatusActive, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), Title: "Voluntariado em Educação Infantil", Company: "ONG Semear", Location: "Recife", Type: "Voluntário", Status: opportunity.StatusActive, CreatedAt: base.Add(2 * time.Hour)},
	}
	out := map[uuid.UUID]opportunity.Opportunity{}
	for _, o := range items {
		out[o.ID] = o
	}
	return out
}

func TestOpportunityList_NoFilters_ReturnsAllSortedNewestFirst(t *testing.T) {
	uc := NewOpportunityListUsecase(&mockOpportunityRepo{items: listFixture()}, nil, 0, nil)

	opps, err := uc.ListOpportunities(context.Background(), search.Query{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(opps) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(opps))
	}
	for i := 1; i < len(opps); i++ {
		if opps[i].CreatedAt.After(opps[i-1].CreatedAt) {
			t.Fatalf("expected newest-first ordering")
		}
	}
}

func TestOpportunityList_FiltersCompose(t *testing.T) {
	uc := NewOpportunityListUsecase(&mockOpportunityRepo{items: listFixture()}, nil, 0, nil)

	opps, err := uc.ListOpportunities(context.Background(), search.Query{Type: "estágio", Location: "olinda"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(opps) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(opps))
	}
	if opps[0].Title != "Estágio em Desenvolvimento Web" {
		t.Fatalf("unexpected match: %s", opps[0].Title)
	}
}

func TestOpportunityList_CachesFilteredResults(t *testing.T) {
	repo := &mockOpportunityRepo{items: listFixture()}
	c := newMockSearchCache()
	uc := NewOpportunityListUsecase(repo, c, time.Minute, nil)

	q := search.Query{Type: "Curso"}
	first, err := uc.ListOpportunities(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.sets == 0 {
		t.Fatalf("expected filtered result to be cached")
	}

	// The store is gone; a second identical query must be served from cache.
	repo.items = nil
	second, err := uc.ListOpportunities(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached result, got %d items", len(second))
	}
}

func TestOpportunityList_EmptyQuerySkipsCache(t *testing.T) {
	c := newMockSearchCache()
	uc := NewOpportunityListUsecase(&mockOpportunityRepo{items: listFixture()}, c, time.Minute, nil)

	if _, err := uc.ListOpportunities(context.Background(), search.Query{Text: "  "}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.sets != 0 {
		t.Fatalf("empty query must not touch the cache, got %d sets", c.sets)
	}
}
