package models

import "time"

type File struct {
	ID          string    `json:"id"`
	FolderID    string    `json:"folder_id"`
	Name        string    `json:"name"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"-"`
	Description string    `json:"description,omitempty"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RenameFileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

type MoveFileRequest struct {
	FolderID string `json:"folder_id" validate:"required,uuid4"`
}

type UpdateFileRequest struct {
	Description string `json:"description" validate:"max=500"`
}
