package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type OpportunitiesUpdatedEvent struct {
	Type            string `json:"type"`
	OpportunityType string `json:"opportunityType"`
	Timestamp       string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyOpportunitiesUpdated broadcasts that new opportunities of the given
// type are available. Silently a no-op when no hub is running.
func NotifyOpportunitiesUpdated(opportunityType string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := OpportunitiesUpdatedEvent{
		Type:            "opportunities_updated",
		OpportunityType: strings.TrimSpace(opportunityType),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
