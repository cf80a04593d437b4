package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== FILE OPERATIONS ====================

func (r *Repository) CreateFile(file *models.File) error {
	_, err := r.db.Exec(`
		INSERT INTO files (id, folder_id, name, mime_type, size_bytes, storage_key,
			description, uploaded_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, file.ID, file.FolderID, file.Name, file.MimeType, file.SizeBytes,
		file.StorageKey, file.Description, file.UploadedBy, file.CreatedAt, file.UpdatedAt)
	return err
}

func (r *Repository) GetFile(fileID string) (*models.File, error) {
	var f models.File
	err := r.db.QueryRow(`
		SELECT id, folder_id, name, mime_type, size_bytes, storage_key,
			   description, uploaded_by, created_at, updated_at
		FROM files WHERE id = ?
	`, fileID).Scan(&f.ID, &f.FolderID, &f.Name, &f.MimeType, &f.SizeBytes,
		&f.StorageKey, &f.Description, &f.UploadedBy, &f.CreatedAt, &f.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *Repository) GetFileByName(folderID, name string) (*models.File, error) {
	var f models.File
	err := r.db.QueryRow(`
		SELECT id, folder_id, name, mime_type, size_bytes, storage_key,
			   description, uploaded_by, created_at, updated_at
		FROM files WHERE folder_id = ? AND name = ?
	`, folderID, name).Scan(&f.ID, &f.FolderID, &f.Name, &f.MimeType, &f.SizeBytes,
		&f.StorageKey, &f.Description, &f.UploadedBy, &f.CreatedAt, &f.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *Repository) GetFilesByFolder(folderID string) ([]models.File, error) {
	rows, err := r.db.Query(`
		SELECT id, folder_id, name, mime_type, size_bytes, storage_key,
			   description, uploaded_by, created_at, updated_at
		FROM files
		WHERE folder_id = ?
		ORDER BY name ASC
	`, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]models.File, 0)
	for rows.Next() {
		var f models.File
		if err := rows.Scan(&f.ID, &f.FolderID, &f.Name, &f.MimeType, &f.SizeBytes,
			&f.StorageKey, &f.Description, &f.UploadedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

// SearchFilesInSpace matches file names within a space, case-insensitive.
func (r *Repository) SearchFilesInSpace(spaceID, query string, limit int) ([]models.File, error) {
	rows, err := r.db.Query(`
		SELECT f.id, f.folder_id, f.name, f.mime_type, f.size_bytes, f.storage_key,
			   f.description, f.uploaded_by, f.created_at, f.updated_at
		FROM files f
		JOIN folders fo ON fo.id = f.folder_id
		JOIN categories c ON c.id = fo.category_id
		WHERE c.space_id = ? AND f.name LIKE ? COLLATE NOCASE
		ORDER BY f.name ASC
		LIMIT ?
	`, spaceID, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]models.File, 0)
	for rows.Next() {
		var f models.File
		if err := rows.Scan(&f.ID, &f.FolderID, &f.Name, &f.MimeType, &f.SizeBytes,
			&f.StorageKey, &f.Description, &f.UploadedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

func (r *Repository) RenameFile(fileID, name string) error {
	_, err := r.db.Exec(`
		UPDATE files SET name = ?, updated_at = ? WHERE id = ?
	`, name, time.Now(), fileID)
	return err
}

func (r *Repository) MoveFile(fileID, folderID string) error {
	_, err := r.db.Exec(`
		UPDATE files SET folder_id = ?, updated_at = ? WHERE id = ?
	`, folderID, time.Now(), fileID)
	return err
}

func (r *Repository) UpdateFileDescription(fileID, description string) error {
	_, err := r.db.Exec(`
		UPDATE files SET description = ?, updated_at = ? WHERE id = ?
	`, description, time.Now(), fileID)
	return err
}

func (r *Repository) DeleteFile(fileID string) error {
	_, err := r.db.Exec("DELETE FROM files WHERE id = ?", fileID)
	return err
}
