package handler

import (
	"errors"

	"portfolio-backend/internal/delivery/http/dto"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/pkg/response"
	"portfolio-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.SkillPopulateUsecase
}

func NewAdminHandler(uc usecase.SkillPopulateUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/admin")
	grp.Post("/populate-skills", h.Populate)
	grp.Post("/clear-skills", h.Clear)
	grp.Post("/reset-and-populate", h.ResetAndPopulate)
}

func (h *AdminHandler) Populate(c fiber.Ctx) error {
	report, err := h.uc.Populate(c.Context())
	if err != nil {
		return mapPopulateError(err, "Failed to populate skills")
	}
	return response.Success(c, fiber.StatusOK, toPopulateResponse(report))
}

func (h *AdminHandler) Clear(c fiber.Ctx) error {
	deleted, err := h.uc.Clear(c.Context())
	if err != nil {
		return mapPopulateError(err, "Failed to clear skills")
	}
	return response.Success(c, fiber.StatusOK, toClearResponse(deleted))
}

func (h *AdminHandler) ResetAndPopulate(c fiber.Ctx) error {
	report, err := h.uc.ResetAndPopulate(c.Context())
	if err != nil {
		return mapPopulateError(err, "Failed to reset and populate skills")
	}
	return response.Success(c, fiber.StatusOK, dto.ResetResponse{
		Message:  "Skills reset and population completed",
		Cleared:  toClearResponse(report.Cleared),
		Populate: toPopulateResponse(report.Populate),
	})
}

func toPopulateResponse(r usecase.PopulateReport) dto.PopulateResponse {
	return dto.PopulateResponse{
		Message:           "Skills population completed",
		TotalProcessed:    r.Processed,
		SuccessfullyAdded: r.Added,
		Skipped:           r.Skipped,
		Errors:            r.Errored,
	}
}

func toClearResponse(deleted int64) dto.ClearResponse {
	return dto.ClearResponse{Message: "All skills cleared from database", DeletedCount: deleted}
}

func mapPopulateError(err error, fallback string) error {
	if errors.Is(err, usecase.ErrNoSkillData) {
		return middleware.NewAppError(fiber.StatusBadRequest, fallback, "No skills data found", err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, fallback, err.Error(), err)
}
