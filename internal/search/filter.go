package search

import (
	"sort"
	"strings"

	"opocentral/internal/domain/opportunity"
)

// Query carries the optional opportunity-list filters. Empty fields are not
// applied; supplied filters compose conjunctively.
type Query struct {
	Text     string
	Type     string
	Location string
}

func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == "" &&
		strings.TrimSpace(q.Type) == "" &&
		strings.TrimSpace(q.Location) == ""
}

// Filter narrows opps against q and orders the survivors by CreatedAt
// descending. The result is always a fresh slice; the input is not mutated.
func Filter(opps []opportunity.Opportunity, q Query) []opportunity.Opportunity {
	text := fold(q.Text)
	typ := fold(q.Type)
	location := fold(q.Location)

	out := make([]opportunity.Opportunity, 0, len(opps))
	for _, o := range opps {
		if text != "" && !matchesText(o, text) {
			continue
		}
		if typ != "" && fold(o.Type) != typ {
			continue
		}
		if location != "" && !strings.Contains(fold(o.Location), location) {
			continue
		}
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// matchesText ORs the substring check across title, description, company and
// type. The type filter above is exact match by contrast.
func matchesText(o opportunity.Opportunity, text string) bool {
	return strings.Contains(fold(o.Title), text) ||
		strings.Contains(fold(o.Description), text) ||
		strings.Contains(fold(o.Company), text) ||
		strings.Contains(fold(o.Type), text)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
