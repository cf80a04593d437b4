package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	SpaceID   string    `json:"space_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100,entityname"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100,entityname"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}
