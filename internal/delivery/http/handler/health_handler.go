package handler

import (
	"portfolio-backend/internal/delivery/http/dto"
	"portfolio-backend/internal/pkg/response"
	"portfolio-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	uc usecase.HealthUsecase
}

func NewHealthHandler(uc usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

// Check always answers 200 while the process serves requests; the payload
// reports whether the store and cache are reachable.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	st := h.uc.Check(c.Context())

	db := "up"
	if !st.Database {
		db = "down"
	}
	return response.Success(c, fiber.StatusOK, dto.HealthResponse{
		Status:     st.Status,
		Service:    st.Service,
		Database:   db,
		Cache:      st.Cache,
		ServerTime: st.ServerTime,
	})
}
