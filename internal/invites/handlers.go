package invites

import (
	"errors"

	"eventlink-backend/internal/domain"
	"eventlink-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service       *Service
	InviteBaseURL string
}

// POST /api/v1/invites/create-invite
func (h *Handlers) CreateInvite(c *fiber.Ctx) error {
	var body struct {
		TemplateID   string              `json:"templateId"`
		EventDetails domain.EventDetails `json:"eventDetails"`
		PlanID       string              `json:"planId"`
		PaymentRef   string              `json:"paymentRef"`
	}
	if err := c.BodyParser(&body); err != nil || body.TemplateID == "" || body.PlanID == "" {
		return response.Error(c, "Template and plan are required", 400, nil)
	}

	inv, err := h.Service.CreateInvite(c.Context(), CreateInviteInput{
		TemplateID:   body.TemplateID,
		EventDetails: body.EventDetails,
		PlanID:       body.PlanID,
		PaymentRef:   body.PaymentRef,
	})
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}

	return response.SuccessCreated(c, "Link generated successfully", inv, fiber.Map{
		"link": h.InviteBaseURL + "/invite/" + inv.InviteID,
	})
}

// POST /api/v1/invites/public/view/:inviteID (no auth)
// Runs the access decision for a JSON client and sets the visited cookie on a
// counted visit.
func (h *Handlers) ViewInvite(c *fiber.Ctx) error {
	inviteID := c.Params("inviteID")
	if inviteID == "" {
		return response.Error(c, "Invite ID is required", 400, nil)
	}

	res, err := h.Service.RegisterVisit(c.Context(), inviteID, &CookieGate{Ctx: c})
	if err != nil {
		return viewError(c, err)
	}

	return response.Success(c, "Invite fetched successfully", res.Invite, fiber.Map{
		"visit_count": res.VisitCount,
		"counted":     res.Counted,
	})
}

// GET /invite/:inviteID (no auth)
// The public invitation page. Same access decision as ViewInvite, rendered
// as HTML via the views engine.
func (h *Handlers) InvitePage(c *fiber.Ctx) error {
	inviteID := c.Params("inviteID")

	res, err := h.Service.RegisterVisit(c.Context(), inviteID, &CookieGate{Ctx: c})
	if err != nil {
		switch {
		case errors.Is(err, ErrInviteNotFound):
			return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{})
		case errors.Is(err, ErrQuotaExceeded):
			return c.Status(fiber.StatusForbidden).Render("quota_exceeded", fiber.Map{})
		default:
			return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{})
		}
	}

	details, err := res.Invite.Details()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{})
	}

	return c.Render("invite", fiber.Map{
		"InviteID":           res.Invite.InviteID,
		"TemplateID":         res.Invite.TemplateID,
		"EventName":          details.EventName,
		"EventDate":          details.EventDate,
		"EventTime":          details.EventTime,
		"EventLocation":      details.EventLocation,
		"EventDescription":   details.EventDescription,
		"OptionalLink":       details.OptionalLink,
		"PrimaryColor":       details.PrimaryColor,
		"FontStyle":          details.FontStyle,
		"EnableRsvp":         details.EnableRsvp,
		"CustomRsvpQuestion": details.CustomRsvpQuestion,
	})
}

// viewError maps access-control errors for JSON clients. QuotaExceeded and
// NotFound carry distinct messages; anything else (store failure, bad plan
// snapshot) is a generic load failure so internal uncertainty never reads as
// a definitive denial.
func viewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInviteNotFound):
		return response.Error(c, "Invite not found.", 404, nil)
	case errors.Is(err, ErrQuotaExceeded):
		return response.Error(c, "This invitation has reached its view limit.", 403, nil)
	default:
		return response.Error(c, "Failed to load event details.", 500, nil)
	}
}
