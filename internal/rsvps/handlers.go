package rsvps

import (
	"errors"

	"eventlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/invites/public/:inviteID/rsvp (no auth, rate limited)
func (h *Handlers) SubmitRsvp(c *fiber.Ctx) error {
	var body struct {
		Name         string `json:"name" form:"name"`
		Email        string `json:"email" form:"email"`
		CustomAnswer string `json:"customAnswer" form:"customAnswer"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Name and email are required", 400, nil)
	}

	resp, err := h.Service.Append(c.Context(), AppendInput{
		InviteID:     c.Params("inviteID"),
		Name:         body.Name,
		Email:        body.Email,
		CustomAnswer: body.CustomAnswer,
	})
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, err.Error(), 400, nil)
	}
	return response.SuccessCreated(c, "RSVP submitted successfully", resp, nil)
}

// GET /api/v1/invites/:inviteID/analytics
func (h *Handlers) Analytics(c *fiber.Ctx) error {
	result, err := h.Service.Analytics(c.Context(), c.Params("inviteID"))
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, err.Error(), 400, nil)
	}
	return response.Success(c, "Analytics fetched successfully", result, fiber.Map{
		"response_count": len(result.Responses),
	})
}

// GET /api/v1/invites/:inviteID/analytics/export
func (h *Handlers) ExportCSV(c *fiber.Ctx) error {
	filename, data, err := h.Service.ExportCSV(c.Context(), c.Params("inviteID"))
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, err.Error(), 400, nil)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
