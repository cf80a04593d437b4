package models

import "time"

type Session struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	FamilyID   string    `json:"family_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}
