package models

import "time"

// Delegation request statuses.
const (
	DelegationPending  = "pending"
	DelegationApproved = "approved"
	DelegationRejected = "rejected"
	DelegationRevoked  = "revoked"
)

// DelegationRequest is a workflow record asking an owner to grant a
// permission. Approval creates the permission; PermissionID links to it.
type DelegationRequest struct {
	ID           string     `json:"id"`
	RequesterID  string     `json:"requester_id"`
	OwnerID      string     `json:"owner_id"`
	TargetType   string     `json:"target_type"`
	TargetID     string     `json:"target_id"`
	Level        string     `json:"level"`
	Reason       string     `json:"reason,omitempty"`
	Status       string     `json:"status"`
	PermissionID *string    `json:"permission_id,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy   *string    `json:"resolved_by,omitempty"`
}

type CreateDelegationRequest struct {
	OwnerID    string `json:"owner_id" validate:"required,uuid4"`
	TargetType string `json:"target_type" validate:"required,targettype"`
	TargetID   string `json:"target_id" validate:"required,uuid4"`
	Level      string `json:"level" validate:"required,permlevel"`
	Reason     string `json:"reason" validate:"max=500"`
}
