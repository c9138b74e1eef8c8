package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// Health reports service liveness together with database reachability.
type Health struct {
	db     model.Pinger
	logger *logger.Logger
}

func NewHealth(db model.Pinger, logger *logger.Logger) *Health {
	return &Health{
		db:     db,
		logger: logger,
	}
}

// Check handles GET /health.
func (h *Health) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(healthResponse{Status: "degraded", DB: "unavailable"})
	}

	return c.Status(fiber.StatusOK).JSON(healthResponse{Status: "ok", DB: "ok"})
}
