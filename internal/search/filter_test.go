package search

import (
	"testing"
	"time"

	"opocentral/internal/domain/opportunity"

	"github.com/google/uuid"
)

func opp(title, company, typ, location string, age time.Duration) opportunity.Opportunity {
	return opportunity.Opportunity{
		ID:        uuid.New(),
		Title:     title,
		Company:   company,
		Type:      typ,
		Location:  location,
		Status:    opportunity.StatusActive,
		CreatedAt: time.Now().UTC().Add(-age),
	}
}

func sampleOpportunities() []opportunity.Opportunity {
	return []opportunity.Opportunity{
		opp("Estágio em Desenvolvimento Web", "TechOlinda", "Estágio", "Olinda, PE", 48*time.Hour),
		opp("Curso de Python", "Escola Digital", "Curso", "Online", 24*time.Hour),
		opp("Curso Avançado de Dados", "DataCamp Recife", "Curso Avançado", "Recife, PE", 12*time.Hour),
		opp("Voluntariado Ambiental", "ONG Verde", "Voluntário", "Olinda, PE", 1*time.Hour),
	}
}

func TestFilter_EmptyQueryReturnsAllSorted(t *testing.T) {
	opps := sampleOpportunities()

	got := Filter(opps, Query{})
	if len(got) != len(opps) {
		t.Fatalf("expected %d results, got %d", len(opps), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("results not sorted by createdAt descending at index %d", i)
		}
	}
}

func TestFilter_TextMatchesAcrossFields(t *testing.T) {
	opps := sampleOpportunities()

	// matches title
	if got := Filter(opps, Query{Text: "python"}); len(got) != 1 {
		t.Fatalf("text=python: expected 1, got %d", len(got))
	}
	// matches company
	if got := Filter(opps, Query{Text: "techolinda"}); len(got) != 1 {
		t.Fatalf("text=techolinda: expected 1, got %d", len(got))
	}
	// matches type as substring
	if got := Filter(opps, Query{Text: "curso"}); len(got) != 2 {
		t.Fatalf("text=curso: expected 2, got %d", len(got))
	}
}

func TestFilter_TypeIsCaseInsensitiveExactMatch(t *testing.T) {
	opps := sampleOpportunities()

	got := Filter(opps, Query{Type: "curso"})
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 result for type=curso, got %d", len(got))
	}
	if got[0].Type != "Curso" {
		t.Fatalf("type=curso must not match %q", got[0].Type)
	}
}

func TestFilter_LocationIsSubstring(t *testing.T) {
	opps := sampleOpportunities()

	got := Filter(opps, Query{Location: "olinda"})
	if len(got) != 2 {
		t.Fatalf("expected 2 results for location=olinda, got %d", len(got))
	}
}

func TestFilter_ComposesConjunctively(t *testing.T) {
	opps := sampleOpportunities()

	got := Filter(opps, Query{Text: "estágio", Location: "olinda"})
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}

	got = Filter(opps, Query{Type: "Curso", Location: "olinda"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestFilter_IsIdempotentAndSubset(t *testing.T) {
	opps := sampleOpportunities()
	q := Query{Location: "pe"}

	once := Filter(opps, q)
	twice := Filter(once, q)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}

	ids := make(map[uuid.UUID]bool, len(opps))
	for _, o := range opps {
		ids[o.ID] = true
	}
	for i, o := range once {
		if !ids[o.ID] {
			t.Fatalf("synthesized record in result at index %d", i)
		}
		if twice[i].ID != o.ID {
			t.Fatalf("order changed on refiltering at index %d", i)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	opps := sampleOpportunities()
	first := opps[0].ID

	_ = Filter(opps, Query{})
	if opps[0].ID != first {
		t.Fatalf("input slice was reordered")
	}
}
