package usecase

import (
	"context"

	"opocentral/internal/domain/user"
	useruc "opocentral/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in useruc.UpdateProfileInput) (user.User, error)
}
