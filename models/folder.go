package models

import "time"

// Folder belongs to a category and optionally to a parent folder.
// A nil ParentID means the folder sits at the category root.
type Folder struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	ParentID   *string   `json:"parent_id,omitempty"`
	Name       string    `json:"name"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateFolderRequest struct {
	CategoryID string  `json:"category_id" validate:"required,uuid4"`
	ParentID   *string `json:"parent_id" validate:"omitempty,uuid4"`
	Name       string  `json:"name" validate:"required,min=1,max=150,entityname"`
}

type RenameFolderRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150,entityname"`
}

type MoveFolderRequest struct {
	ParentID *string `json:"parent_id" validate:"omitempty,uuid4"`
}
