package recommend

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// TopN is how many recommendations are surfaced to the user.
const TopN = 3

const (
	CompatibilityHigh   = "high"
	CompatibilityMedium = "medium"
)

// highThreshold: a score strictly above it is labeled high compatibility.
const highThreshold = 5

const (
	interestWeight = 3
	locationWeight = 2
	skillWeight    = 1
	savedPenalty   = 5
)

type Profile struct {
	Location           string
	Skills             []string
	Interests          []string
	SavedOpportunities []uuid.UUID
}

type Candidate struct {
	ID           uuid.UUID
	Type         string
	Location     string
	Requirements []string
}

type Scored struct {
	Candidate
	Score         int
	Compatibility string
}

// Rank scores every candidate against the profile and returns the TopN by
// descending score. Ties keep input order. Inputs are never mutated.
func Rank(p Profile, candidates []Candidate) []Scored {
	if len(candidates) == 0 {
		return []Scored{}
	}

	saved := make(map[uuid.UUID]struct{}, len(p.SavedOpportunities))
	for _, id := range p.SavedOpportunities {
		saved[id] = struct{}{}
	}

	out := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		s := score(p, saved, c)
		out = append(out, Scored{
			Candidate:     c,
			Score:         s,
			Compatibility: Compatibility(s),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}

// Score computes the relevance of a single candidate for the profile.
func Score(p Profile, c Candidate) int {
	saved := make(map[uuid.UUID]struct{}, len(p.SavedOpportunities))
	for _, id := range p.SavedOpportunities {
		saved[id] = struct{}{}
	}
	return score(p, saved, c)
}

// Compatibility is a presentation label, not a filter: low-scored candidates
// are only excluded by the TopN cut.
func Compatibility(score int) string {
	if score > highThreshold {
		return CompatibilityHigh
	}
	return CompatibilityMedium
}

func score(p Profile, saved map[uuid.UUID]struct{}, c Candidate) int {
	s := 0

	for _, interest := range p.Interests {
		if interest == c.Type {
			s += interestWeight
			break
		}
	}

	if p.Location != "" && c.Location == p.Location {
		s += locationWeight
	}

	for _, req := range c.Requirements {
		if requirementMatchesAnySkill(req, p.Skills) {
			s += skillWeight
		}
	}

	if _, ok := saved[c.ID]; ok {
		s -= savedPenalty
	}

	return s
}

// requirementMatchesAnySkill matches case-insensitively in both substring
// directions; requirement texts are usually whole phrases ("Conhecimento em
// JavaScript") while skills are single terms.
func requirementMatchesAnySkill(req string, skills []string) bool {
	r := strings.ToLower(strings.TrimSpace(req))
	if r == "" {
		return false
	}
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if strings.Contains(r, s) || strings.Contains(s, r) {
			return true
		}
	}
	return false
}
