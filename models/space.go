package models

import "time"

type Space struct {
	ID          string    `json:"id"`
	FamilyID    string    `json:"family_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SpaceAccess is an explicit access record shared among family members.
type SpaceAccess struct {
	SpaceID   string    `json:"space_id"`
	MemberID  string    `json:"member_id"`
	CanManage bool      `json:"can_manage"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSpaceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100,entityname"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateSpaceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100,entityname"`
	Description string `json:"description" validate:"max=500"`
}

type GrantSpaceAccessRequest struct {
	MemberIDs []string `json:"member_ids" validate:"required,min=1,dive,uuid4"`
	CanManage bool     `json:"can_manage"`
}
