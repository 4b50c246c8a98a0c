package handler

import (
	"errors"
	"net/url"
	"strconv"

	"portfolio-backend/internal/delivery/http/dto"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/pkg/response"
	"portfolio-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

// RegisterRoutes mounts the skill API under /skills. Fixed paths are
// registered before /:id so they are never parsed as ids.
func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/category/:category", h.ListByCategory)
	grp.Get("/bubbles", h.Bubbles)
	grp.Get("/ordered", h.Ordered)
	grp.Get("/categories", h.Categories)
	grp.Get("/top", h.Top)
	grp.Get("/search", h.Search)
	grp.Get("/stats", h.Stats)
	grp.Get("/:id/exists", h.Exists)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve skills")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := parseSkillID(c)
	if err != nil {
		return err
	}

	item, found, err := h.uc.GetSkill(c.Context(), id)
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve skill")
	}
	if !found {
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", "No skill found with ID: "+strconv.FormatInt(id, 10), nil)
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponse(item))
}

func (h *SkillHandler) ListByCategory(c fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid category", err.Error(), err)
	}
	items, err := h.uc.ListByCategory(c.Context(), category)
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve skills by category")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Bubbles(c fiber.Ctx) error {
	minProficiency, err := parseQueryIntOptional(c, "minProficiency")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid minProficiency", err.Error(), err)
	}

	items, err := h.uc.ListForBubbles(c.Context(), minProficiency)
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve bubble skills")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Ordered(c fiber.Ctx) error {
	items, err := h.uc.ListOrdered(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve ordered skills")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Categories(c fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve categories")
	}
	return response.Success(c, fiber.StatusOK, items)
}

func (h *SkillHandler) Top(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", err.Error(), err)
	}

	items, err := h.uc.TopSkills(c.Context(), limit)
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve top skills")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Search(c fiber.Ctx) error {
	items, err := h.uc.SearchSkills(c.Context(), c.Query("name"))
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to search skills")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Stats(c fiber.Ctx) error {
	items, err := h.uc.CategoryStats(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to retrieve skill statistics")
	}
	return response.Success(c, fiber.StatusOK, dto.NewCategoryStatResponses(items))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err.Error(), err)
	}

	created, err := h.uc.CreateSkill(c.Context(), req.ToSkill())
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to create skill")
	}
	return response.Success(c, fiber.StatusCreated, dto.NewSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := parseSkillID(c)
	if err != nil {
		return err
	}

	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err.Error(), err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), id, req.ToSkill())
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to update skill")
	}
	return response.Success(c, fiber.StatusOK, dto.NewSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := parseSkillID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return mapSkillUsecaseError(err, "Failed to delete skill")
	}
	return response.Success(c, fiber.StatusOK, dto.SkillDeletedResponse{
		DeletedID: id,
		Message:   "Skill deleted successfully",
	})
}

func (h *SkillHandler) Exists(c fiber.Ctx) error {
	id, err := parseSkillID(c)
	if err != nil {
		return err
	}

	exists, err := h.uc.SkillExists(c.Context(), id)
	if err != nil {
		return mapSkillUsecaseError(err, "Failed to check skill existence")
	}
	return response.Success(c, fiber.StatusOK, dto.SkillExistsResponse{SkillID: id, Exists: exists})
}

func parseSkillID(c fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill ID", "Skill ID must be an integer, got '"+raw+"'", err)
	}
	return id, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return v, nil
}

func parseQueryIntOptional(c fiber.Ctx, key string) (*int, error) {
	if c.Query(key) == "" {
		return nil, nil
	}
	v, err := parseQueryIntStrict(c, key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func mapSkillUsecaseError(err error, fallback string) error {
	switch {
	case errors.Is(err, skill.ErrValidation), errors.Is(err, skill.ErrDuplicateName):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill data", err.Error(), err)
	case errors.Is(err, skill.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", err.Error(), err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, fallback, err.Error(), err)
	}
}
