package payments

import (
	"context"
	"time"

	"eventlink-backend/internal/plans"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Receipt is the outcome of a simulated checkout. No gateway is contacted;
// paid plans get status "simulated", the free plan gets "waived".
type Receipt struct {
	PaymentRef  string    `json:"payment_ref"`
	PlanID      string    `json:"plan_id"`
	PlanName    string    `json:"plan_name"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
}

const (
	StatusSimulated = "simulated"
	StatusWaived    = "waived"
)

type Service struct{}

// SimulateCheckout validates the plan and issues a local receipt reference
// for the creation flow to attach to the invite.
func (s *Service) SimulateCheckout(ctx context.Context, planID string) (*Receipt, error) {
	plan, err := plans.ByID(planID)
	if err != nil {
		return nil, err
	}

	status := StatusSimulated
	if plan.Price == 0 {
		status = StatusWaived
	}

	r := &Receipt{
		PaymentRef:  uuid.New().String(),
		PlanID:      plan.ID,
		PlanName:    plan.Name,
		Amount:      plan.Price,
		Status:      status,
		ProcessedAt: time.Now().UTC(),
	}
	log.Info().Str("payment_ref", r.PaymentRef).Str("plan_id", r.PlanID).Int64("amount", r.Amount).Msg("Simulated checkout")
	return r, nil
}
