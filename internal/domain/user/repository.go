package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound             = errors.New("user not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched, mirroring the partial-merge semantics of the backing store.
type ProfileUpdate struct {
	FullName    *string
	Bio         *string
	Location    *string
	Education   *string
	Skills      []string
	Interests   []string
	SocialMedia *SocialMedia
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) error

	// AddSavedOpportunity appends id to the saved set if absent. The append
	// must be atomic in the store; calling it twice is a no-op the second time.
	AddSavedOpportunity(ctx context.Context, userID, opportunityID uuid.UUID) error

	// AddApplication fails with ErrDuplicateApplication when the user already
	// applied to the same opportunity.
	AddApplication(ctx context.Context, userID uuid.UUID, app Application) error
	ListApplications(ctx context.Context, userID uuid.UUID) ([]Application, error)
}
