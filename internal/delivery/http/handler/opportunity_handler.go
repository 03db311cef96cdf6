package handler

import (
	"errors"
	"time"

	"opocentral/internal/delivery/http/dto"
	"opocentral/internal/delivery/http/middleware"
	"opocentral/internal/pkg/response"
	"opocentral/internal/search"
	"opocentral/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OpportunityHandler struct {
	list      usecase.OpportunityListUsecase
	create    usecase.OpportunityCreateUsecase
	tracker   usecase.TrackerUsecase
	recommend usecase.RecommendationUsecase
}

type createOpportunityRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Requirements []string   `json:"requirements"`
	Benefits     []string   `json:"benefits"`
	Salary       string     `json:"salary"`
	Duration     string     `json:"duration"`
	Deadline     *time.Time `json:"deadline"`
}

func NewOpportunityHandler(
	list usecase.OpportunityListUsecase,
	create usecase.OpportunityCreateUsecase,
	tracker usecase.TrackerUsecase,
	recommend usecase.RecommendationUsecase,
) *OpportunityHandler {
	return &OpportunityHandler{list: list, create: create, tracker: tracker, recommend: recommend}
}

// RegisterPublicRoutes binds the unauthenticated listing endpoint.
func (h *OpportunityHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

// RegisterProtectedRoutes binds everything that needs a resolved user.
func (h *OpportunityHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/saved", h.ListSaved)
	r.Post("/save/:id", h.Save)
	r.Post("/apply/:id", h.Apply)
	r.Get("/applications", h.ListApplications)
	r.Get("/recommendations", h.Recommendations)
}

// List accepts the original query names: busca (free text), type, location.
func (h *OpportunityHandler) List(c fiber.Ctx) error {
	q := search.Query{
		Text:     c.Query("busca"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
	}

	opps, err := h.list.ListOpportunities(c.Context(), q)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOpportunityListResponse(opps))
}

func (h *OpportunityHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createOpportunityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	o, err := h.create.CreateOpportunity(c.Context(), userID, usecase.CreateOpportunityInput{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Salary:       req.Salary,
		Duration:     req.Duration,
		Deadline:     req.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			return middleware.NewAppError(fiber.StatusForbidden, "Only employers can create opportunities", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewOpportunityResponse(o))
}

func (h *OpportunityHandler) ListSaved(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	opps, err := h.tracker.ListSaved(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOpportunityListResponse(opps))
}

func (h *OpportunityHandler) Save(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opportunity id", nil, err)
	}

	saved, err := h.tracker.Save(c.Context(), userID, oppID)
	if err != nil {
		return mapTrackerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"savedOpportunities": saved})
}

func (h *OpportunityHandler) Apply(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	oppID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opportunity id", nil, err)
	}

	app, err := h.tracker.Apply(c.Context(), userID, oppID)
	if err != nil {
		return mapTrackerError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, app)
}

func (h *OpportunityHandler) ListApplications(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	views, err := h.tracker.ListApplications(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(views))
}

func (h *OpportunityHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.recommend.GetRecommendations(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationListResponse(items))
}

func mapTrackerError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", nil, err)
	case errors.Is(err, usecase.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this opportunity", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
