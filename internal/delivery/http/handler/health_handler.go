package handler

import (
	"time"

	"staffhub/internal/database"
	"staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status":   "ok",
		"database": "ok",
		"time":     time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			data["status"] = "degraded"
			data["database"] = "unreachable"
			return response.Success(c, fiber.StatusServiceUnavailable, "degraded", data)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
