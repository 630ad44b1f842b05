package rsvps

import (
	"context"
	"errors"
	"time"

	"eventlink-backend/internal/domain"
	"eventlink-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrInviteNotFound = errors.New("Invite not found")
	ErrRsvpDisabled   = errors.New("RSVP and analytics were not enabled for this event")
)

type Service struct {
	DB *gorm.DB
}

type AppendInput struct {
	InviteID     string
	Name         string
	Email        string
	CustomAnswer string
}

// Append records one guest response. SubmittedAt is assigned here, never
// taken from the client. RSVP submission is deliberately independent of the
// invite's visit quota: a page that already loaded can always submit, even
// after later visitors were denied.
func (s *Service) Append(ctx context.Context, in AppendInput) (*domain.RsvpResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, errors.New("Name and email are required")
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, errors.New("Invalid email address")
	}

	inv, err := s.loadInvite(ctx, in.InviteID)
	if err != nil {
		return nil, err
	}
	details, err := inv.Details()
	if err != nil {
		return nil, err
	}
	if !details.EnableRsvp {
		return nil, ErrRsvpDisabled
	}

	resp := &domain.RsvpResponse{
		InviteID:     inv.InviteID,
		Name:         in.Name,
		Email:        in.Email,
		CustomAnswer: in.CustomAnswer,
		SubmittedAt:  time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).Create(resp).Error; err != nil {
		return nil, err
	}
	log.Info().Str("invite_id", inv.InviteID).Str("response_id", resp.ResponseID.String()).Msg("RSVP recorded")
	return resp, nil
}

// ListResponses returns all responses for an invite, newest first.
func (s *Service) ListResponses(ctx context.Context, inviteID string) ([]domain.RsvpResponse, error) {
	var out []domain.RsvpResponse
	err := s.DB.WithContext(ctx).
		Where("invite_id = ?", inviteID).
		Order("submitted_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyticsResult bundles what the analytics view needs: the event, its
// details and the response log.
type AnalyticsResult struct {
	Invite    *domain.Invite        `json:"invite"`
	Details   domain.EventDetails   `json:"event_details"`
	Responses []domain.RsvpResponse `json:"responses"`
}

// Analytics loads the invite and its responses for the creator's dashboard.
// Refused when RSVP was not enabled for the event.
func (s *Service) Analytics(ctx context.Context, inviteID string) (*AnalyticsResult, error) {
	inv, err := s.loadInvite(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	details, err := inv.Details()
	if err != nil {
		return nil, err
	}
	if !details.EnableRsvp {
		return nil, ErrRsvpDisabled
	}
	responses, err := s.ListResponses(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	return &AnalyticsResult{Invite: inv, Details: details, Responses: responses}, nil
}

func (s *Service) loadInvite(ctx context.Context, inviteID string) (*domain.Invite, error) {
	var inv domain.Invite
	if err := s.DB.WithContext(ctx).First(&inv, "invite_id = ?", inviteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	return &inv, nil
}
