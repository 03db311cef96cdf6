package user

import (
	"context"
	"errors"

	"opocentral/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// UpdateProfileInput mirrors user.ProfileUpdate at the usecase boundary:
// nil fields are not touched.
type UpdateProfileInput struct {
	FullName    *string
	Bio         *string
	Location    *string
	Education   *string
	Skills      []string
	Interests   []string
	SocialMedia *user.SocialMedia
}

func (in UpdateProfileInput) isEmpty() bool {
	return in.FullName == nil && in.Bio == nil && in.Location == nil &&
		in.Education == nil && in.Skills == nil && in.Interests == nil &&
		in.SocialMedia == nil
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if in.isEmpty() {
		return user.User{}, ErrInvalidInput
	}

	upd := user.ProfileUpdate{
		FullName:    in.FullName,
		Bio:         in.Bio,
		Location:    in.Location,
		Education:   in.Education,
		Skills:      in.Skills,
		Interests:   in.Interests,
		SocialMedia: in.SocialMedia,
	}

	if err := s.users.UpdateProfile(ctx, userID, upd); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
