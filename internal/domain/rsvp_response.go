package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RsvpResponse is a guest-submitted answer to an invite's RSVP form.
// Append-only: never updated or deleted. SubmittedAt is assigned by the
// server at write time so listing order is immune to client clock skew.
type RsvpResponse struct {
	ResponseID   uuid.UUID `gorm:"column:response_id;type:uuid;primaryKey" json:"response_id"`
	InviteID     string    `gorm:"column:invite_id;not null;index" json:"invite_id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Email        string    `gorm:"column:email;not null" json:"email"`
	CustomAnswer string    `gorm:"column:custom_answer" json:"custom_answer,omitempty"`
	SubmittedAt  time.Time `gorm:"column:submitted_at;not null;index" json:"submitted_at"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (RsvpResponse) TableName() string {
	return "rsvp_responses"
}

func (r *RsvpResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ResponseID == uuid.Nil {
		r.ResponseID = uuid.New()
	}
	return nil
}
