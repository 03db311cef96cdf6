package opportunity

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Opportunity is a listed internship, course, volunteering or job record.
// Records are immutable once created; only active ones are surfaced.
type Opportunity struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Requirements []string   `json:"requirements"`
	Benefits     []string   `json:"benefits"`
	Salary       string     `json:"salary,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Status       string     `json:"status"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    *uuid.UUID `json:"createdBy,omitempty"`
}
