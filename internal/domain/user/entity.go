package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeJovem      = "Jovem"
	TypeEmpregador = "Empregador"
)

const ApplicationStatusPending = "pending"

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserType     string    `json:"userType"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile holds the mutable personal data embedded in a User. Registration
// creates it with all-empty defaults; only the owning user mutates it.
type Profile struct {
	FullName           string      `json:"fullName"`
	Bio                string      `json:"bio"`
	Location           string      `json:"location"`
	Education          string      `json:"education"`
	Skills             []string    `json:"skills"`
	Interests          []string    `json:"interests"`
	SocialMedia        SocialMedia `json:"socialMedia"`
	SavedOpportunities []uuid.UUID `json:"savedOpportunities"`
}

type SocialMedia struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Application records a user having applied to an opportunity. Status has a
// single value, "pending"; no transition exists.
type Application struct {
	OpportunityID uuid.UUID `json:"opportunityId"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

func EmptyProfile() Profile {
	return Profile{
		Skills:             []string{},
		Interests:          []string{},
		SavedOpportunities: []uuid.UUID{},
	}
}
