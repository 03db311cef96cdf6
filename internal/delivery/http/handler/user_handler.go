package handler

import (
	"errors"

	"opocentral/internal/delivery/http/middleware"
	"opocentral/internal/domain/user"
	"opocentral/internal/pkg/response"
	"opocentral/internal/usecase"
	useruc "opocentral/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type socialMediaRequest struct {
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
}

type updateProfileRequest struct {
	FullName    *string             `json:"fullName"`
	Bio         *string             `json:"bio"`
	Location    *string             `json:"location"`
	Education   *string             `json:"education"`
	Skills      []string            `json:"skills"`
	Interests   []string            `json:"interests"`
	SocialMedia *socialMediaRequest `json:"socialMedia"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetProfile)
	r.Put("/", h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	in := useruc.UpdateProfileInput{
		FullName:  req.FullName,
		Bio:       req.Bio,
		Location:  req.Location,
		Education: req.Education,
		Skills:    req.Skills,
		Interests: req.Interests,
	}
	if req.SocialMedia != nil {
		in.SocialMedia = &user.SocialMedia{
			LinkedIn:  req.SocialMedia.LinkedIn,
			Instagram: req.SocialMedia.Instagram,
			GitHub:    req.SocialMedia.GitHub,
			Twitter:   req.SocialMedia.Twitter,
		}
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, useruc.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}
