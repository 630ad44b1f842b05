package payments

import (
	"eventlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/payments/simulate-checkout
func (h *Handlers) SimulateCheckout(c *fiber.Ctx) error {
	var body struct {
		PlanID string `json:"planId"`
	}
	if err := c.BodyParser(&body); err != nil || body.PlanID == "" {
		return response.Error(c, "Plan is required", 400, nil)
	}

	receipt, err := h.Service.SimulateCheckout(c.Context(), body.PlanID)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}
	return response.Success(c, "Checkout simulated successfully", receipt, nil)
}
