package health

import (
	"eventlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Rdb            *redis.Client
	DB             DBPinger
	HealthAdminKey string
}

// GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := CollectHealth(c.Context(), h.Rdb, h.DB)
	return c.Status(fiber.StatusOK).JSON(result)
}

// GET /health/reset (admin key required)
func (h *Handlers) Reset(c *fiber.Ctx) error {
	if h.HealthAdminKey == "" || c.Query("key") != h.HealthAdminKey {
		return response.Error(c, "Unauthorized", fiber.StatusUnauthorized, nil)
	}
	if err := ResetCounters(c.Context(), h.Rdb); err != nil {
		return response.Error(c, "Failed to reset health counters", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Health counters reset", nil, nil)
}
