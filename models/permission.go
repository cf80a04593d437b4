package models

import "time"

// Permission levels, ordered weakest to strongest.
const (
	LevelView       = "view"
	LevelContribute = "contribute"
	LevelManage     = "manage"
)

// Targets a permission or delegation request can scope.
const (
	TargetFile     = "file"
	TargetFolder   = "folder"
	TargetCategory = "category"
	TargetSpace    = "space"
)

// Permission statuses.
const (
	PermissionActive  = "active"
	PermissionRevoked = "revoked"
)

// Target identifies an entity a permission can scope.
type Target struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Permission scopes a beneficiary's rights over a target. A nil ExpiresAt
// means the grant never expires.
type Permission struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	BeneficiaryID string     `json:"beneficiary_id"`
	TargetType    string     `json:"target_type"`
	TargetID      string     `json:"target_id"`
	Level         string     `json:"level"`
	Status        string     `json:"status"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	GrantedAt     time.Time  `json:"granted_at"`
}

type GrantPermissionRequest struct {
	BeneficiaryIDs []string   `json:"beneficiary_ids" validate:"required,min=1,dive,uuid4"`
	TargetType     string     `json:"target_type" validate:"required,targettype"`
	TargetID       string     `json:"target_id" validate:"required,uuid4"`
	Level          string     `json:"level" validate:"required,permlevel"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type CheckAccessRequest struct {
	MemberID   string `json:"member_id" validate:"required,uuid4"`
	TargetType string `json:"target_type" validate:"required,targettype"`
	TargetID   string `json:"target_id" validate:"required,uuid4"`
	Level      string `json:"level" validate:"required,permlevel"`
}
