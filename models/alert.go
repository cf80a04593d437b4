package models

import "time"

// Alert recurrence intervals.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// Alert is a scheduled reminder. One-shot alerts (recurrence "none") are
// deactivated after firing; recurring alerts advance NextTriggerAt.
type Alert struct {
	ID              string     `json:"id"`
	MemberID        string     `json:"member_id"`
	Title           string     `json:"title"`
	Message         string     `json:"message,omitempty"`
	TargetType      *string    `json:"target_type,omitempty"`
	TargetID        *string    `json:"target_id,omitempty"`
	Recurrence      string     `json:"recurrence"`
	NextTriggerAt   time.Time  `json:"next_trigger_at"`
	Active          bool       `json:"active"`
	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateAlertRequest struct {
	Title         string    `json:"title" validate:"required,min=1,max=150"`
	Message       string    `json:"message" validate:"max=500"`
	TargetType    *string   `json:"target_type" validate:"omitempty,targettype"`
	TargetID      *string   `json:"target_id" validate:"omitempty,uuid4"`
	Recurrence    string    `json:"recurrence" validate:"required,recurrence"`
	NextTriggerAt time.Time `json:"next_trigger_at" validate:"required"`
}

type UpdateAlertRequest struct {
	Title         string    `json:"title" validate:"required,min=1,max=150"`
	Message       string    `json:"message" validate:"max=500"`
	Recurrence    string    `json:"recurrence" validate:"required,recurrence"`
	NextTriggerAt time.Time `json:"next_trigger_at" validate:"required"`
	Active        bool      `json:"active"`
}
