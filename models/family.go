package models

import "time"

// Member roles within a family. The first member of a family is its owner.
const (
	RoleOwner = "owner"
	RoleAdult = "adult"
	RoleChild = "child"
)

type Family struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Member struct {
	ID           string    `json:"id"`
	FamilyID     string    `json:"family_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterFamilyRequest struct {
	FamilyName string `json:"family_name" validate:"required,min=2,max=100,entityname"`
	OwnerName  string `json:"owner_name" validate:"required,min=2,max=100,entityname"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
}

type AddMemberRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100,entityname"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,memberrole"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateMemberRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100,entityname"`
	Role  string `json:"role" validate:"required,memberrole"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
