package invites

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"

	"eventlink-backend/internal/domain"
	"eventlink-backend/internal/pkg/validation"
	"eventlink-backend/internal/plans"
	"eventlink-backend/internal/templates"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInviteNotFound = errors.New("Invite not found")
	ErrQuotaExceeded  = errors.New("This invitation has reached its view limit")
)

const inviteIDLength = 8

type Service struct {
	DB *gorm.DB
}

type CreateInviteInput struct {
	TemplateID   string
	EventDetails domain.EventDetails
	PlanID       string
	PaymentRef   string
}

// CreateInvite stores a new invite with a fresh link token and a snapshot of
// the plan's visit ceiling. Unknown template or plan ids fail the whole
// creation — a record must never be written with an unresolvable quota.
func (s *Service) CreateInvite(ctx context.Context, in CreateInviteInput) (*domain.Invite, error) {
	tpl, err := templates.ByID(in.TemplateID)
	if err != nil {
		return nil, err
	}
	plan, err := plans.ByID(in.PlanID)
	if err != nil {
		return nil, err
	}
	if in.EventDetails.EventName == "" || in.EventDetails.EventDate == "" ||
		in.EventDetails.EventTime == "" || in.EventDetails.EventLocation == "" {
		return nil, errors.New("Event name, date, time and location are required")
	}
	if in.EventDetails.PrimaryColor != "" && !validation.IsValidHexColor(in.EventDetails.PrimaryColor) {
		return nil, errors.New("Invalid hex color")
	}

	maxVisits, err := plans.MaxVisits(plan.ID)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(in.EventDetails)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invite{
		InviteID:      randomToken(inviteIDLength),
		TemplateID:    tpl.ID,
		TemplateName:  tpl.Name,
		EventDetails:  datatypes.JSON(raw),
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		PlanMaxVisits: maxVisits,
		VisitCount:    0,
	}
	if err := s.DB.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, err
	}
	log.Info().Str("invite_id", inv.InviteID).Str("plan_id", inv.PlanID).Msg("Invite created")
	return inv, nil
}

// GetInvite loads a single invite by id.
func (s *Service) GetInvite(ctx context.Context, inviteID string) (*domain.Invite, error) {
	var inv domain.Invite
	if err := s.DB.WithContext(ctx).First(&inv, "invite_id = ?", inviteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// VisitResult is the outcome of an allowed page load. Counted reports whether
// this load consumed a quota slot; VisitCount is the optimistic post-increment
// value (old count + 1 on a counted visit, no re-read).
type VisitResult struct {
	Invite     *domain.Invite
	VisitCount int64
	Counted    bool
}

// RegisterVisit decides ALLOW/DENY for one page load and performs the
// counting. Repeat visitors (per the gate) are allowed without mutation.
// New visitors are admitted through a conditional atomic increment: the
// UPDATE re-checks the ceiling so concurrent first-time visitors can never
// push visit_count past plan_max_visits. The gate is marked only after the
// increment is confirmed; a failed write leaves the visitor uncounted so the
// next load retries the full sequence.
func (s *Service) RegisterVisit(ctx context.Context, inviteID string, gate Gate) (*VisitResult, error) {
	var inv domain.Invite
	if err := s.DB.WithContext(ctx).First(&inv, "invite_id = ?", inviteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}

	// A stored plan id that has left the catalog is a data-integrity fault;
	// fail closed rather than serve the page with an unknown quota.
	if _, err := plans.ByID(inv.PlanID); err != nil {
		log.Error().Str("invite_id", inviteID).Str("plan_id", inv.PlanID).Msg("Invite references unknown plan")
		return nil, err
	}

	if gate.HasVisited(inviteID) {
		return &VisitResult{Invite: &inv, VisitCount: inv.VisitCount, Counted: false}, nil
	}

	if inv.PlanMaxVisits != nil && inv.VisitCount >= *inv.PlanMaxVisits {
		return nil, ErrQuotaExceeded
	}

	res := s.DB.WithContext(ctx).Model(&domain.Invite{}).
		Where("invite_id = ? AND (plan_max_visits IS NULL OR visit_count < plan_max_visits)", inviteID).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the last slot to a concurrent visitor between read and write.
		return nil, ErrQuotaExceeded
	}

	gate.MarkVisited(inviteID)
	inv.VisitCount++
	return &VisitResult{Invite: &inv, VisitCount: inv.VisitCount, Counted: true}, nil
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomToken(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	for i := range b {
		b[i] = tokenAlphabet[int(b[i])%len(tokenAlphabet)]
	}
	return string(b)
}
