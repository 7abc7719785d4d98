package handler

import (
	"staffhub/internal/delivery/http/dto"
	"staffhub/internal/pkg/response"
	"staffhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/analytics/stats", h.Stats)
}

func (h *AnalyticsHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDashboardStats(stats))
}
