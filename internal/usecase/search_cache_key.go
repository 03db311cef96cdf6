package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"opocentral/internal/search"
)

type searchCacheKeyInput struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// OpportunitySearchCacheKey hashes the normalized query so equivalent filter
// combinations share a cache entry.
func OpportunitySearchCacheKey(q search.Query) string {
	in := searchCacheKeyInput{
		Text:     normalizeSearchValue(q.Text),
		Type:     normalizeSearchValue(q.Type),
		Location: normalizeSearchValue(q.Location),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "opportunities:search:" + hex.EncodeToString(sum[:])
}

func OpportunitySearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "opportunities:search:") {
		return "opportunities:lock:" + strings.TrimPrefix(searchKey, "opportunities:search:")
	}
	return "opportunities:lock:" + searchKey
}
