package models

import "time"

// AuditEntry records a mutation for the family's activity log. Append-only.
type AuditEntry struct {
	ID         string    `json:"id"`
	FamilyID   string    `json:"family_id"`
	MemberID   string    `json:"member_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
