package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// EventDetails is the creator-supplied content of an invitation page.
// Written once by the creation flow; the visit-accounting path never touches it.
type EventDetails struct {
	EventName          string `json:"eventName"`
	EventDate          string `json:"eventDate"`
	EventTime          string `json:"eventTime"`
	EventLocation      string `json:"eventLocation"`
	EventDescription   string `json:"eventDescription"`
	OptionalLink       string `json:"optionalLink,omitempty"`
	PrimaryColor       string `json:"primaryColor,omitempty"`
	FontStyle          string `json:"fontStyle,omitempty"`
	EnableRsvp         bool   `json:"enableRsvp"`
	CustomRsvpQuestion string `json:"customRsvpQuestion,omitempty"`
}

// Invite is one generated invitation record. PlanMaxVisits is snapshotted from
// the plan catalog at creation so later catalog changes never affect existing
// invites; nil means unlimited views. VisitCount is mutated only through the
// conditional-increment path in the invites service.
type Invite struct {
	InviteID      string         `gorm:"column:invite_id;primaryKey" json:"invite_id"`
	TemplateID    string         `gorm:"column:template_id;not null" json:"template_id"`
	TemplateName  string         `gorm:"column:template_name" json:"template_name"`
	EventDetails  datatypes.JSON `gorm:"column:event_details;not null" json:"event_details"`
	PlanID        string         `gorm:"column:plan_id;not null" json:"plan_id"`
	PlanName      string         `gorm:"column:plan_name;not null" json:"plan_name"`
	PlanMaxVisits *int64         `gorm:"column:plan_max_visits" json:"plan_max_visits"`
	VisitCount    int64          `gorm:"column:visit_count;not null;default:0" json:"visit_count"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Invite) TableName() string {
	return "invites"
}

// Details decodes the event-details JSON column.
func (i *Invite) Details() (EventDetails, error) {
	var d EventDetails
	err := json.Unmarshal(i.EventDetails, &d)
	return d, err
}
