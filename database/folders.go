package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== FOLDER OPERATIONS ====================

func (r *Repository) CreateFolder(folder *models.Folder) error {
	_, err := r.db.Exec(`
		INSERT INTO folders (id, category_id, parent_id, name, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, folder.ID, folder.CategoryID, folder.ParentID, folder.Name,
		folder.CreatedBy, folder.CreatedAt, folder.UpdatedAt)
	return err
}

func (r *Repository) GetFolder(folderID string) (*models.Folder, error) {
	var f models.Folder
	err := r.db.QueryRow(`
		SELECT id, category_id, parent_id, name, created_by, created_at, updated_at
		FROM folders WHERE id = ?
	`, folderID).Scan(&f.ID, &f.CategoryID, &f.ParentID, &f.Name,
		&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// GetFolderByName looks up a sibling by name. A nil parentID addresses the
// category root.
func (r *Repository) GetFolderByName(categoryID string, parentID *string, name string) (*models.Folder, error) {
	var f models.Folder
	var err error

	if parentID == nil {
		err = r.db.QueryRow(`
			SELECT id, category_id, parent_id, name, created_by, created_at, updated_at
			FROM folders WHERE category_id = ? AND parent_id IS NULL AND name = ?
		`, categoryID, name).Scan(&f.ID, &f.CategoryID, &f.ParentID, &f.Name,
			&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	} else {
		err = r.db.QueryRow(`
			SELECT id, category_id, parent_id, name, created_by, created_at, updated_at
			FROM folders WHERE category_id = ? AND parent_id = ? AND name = ?
		`, categoryID, *parentID, name).Scan(&f.ID, &f.CategoryID, &f.ParentID, &f.Name,
			&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	}

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// GetChildFolders lists direct children. A nil parentID lists category roots.
func (r *Repository) GetChildFolders(categoryID string, parentID *string) ([]models.Folder, error) {
	var rows *sql.Rows
	var err error

	if parentID == nil {
		rows, err = r.db.Query(`
			SELECT id, category_id, parent_id, name, created_by, created_at, updated_at
			FROM folders
			WHERE category_id = ? AND parent_id IS NULL
			ORDER BY name ASC
		`, categoryID)
	} else {
		rows, err = r.db.Query(`
			SELECT id, category_id, parent_id, name, created_by, created_at, updated_at
			FROM folders
			WHERE parent_id = ?
			ORDER BY name ASC
		`, *parentID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.ParentID, &f.Name,
			&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}

	return folders, rows.Err()
}

func (r *Repository) RenameFolder(folderID, name string) error {
	_, err := r.db.Exec(`
		UPDATE folders SET name = ?, updated_at = ? WHERE id = ?
	`, name, time.Now(), folderID)
	return err
}

func (r *Repository) MoveFolder(folderID string, parentID *string) error {
	_, err := r.db.Exec(`
		UPDATE folders SET parent_id = ?, updated_at = ? WHERE id = ?
	`, parentID, time.Now(), folderID)
	return err
}

// DeleteFolderTree removes the folder and every descendant, files first,
// inside one transaction. IDs must already include the root folder.
func (r *Repository) DeleteFolderTree(folderIDs []string) error {
	return r.withTx(func(tx *sql.Tx) error {
		for _, id := range folderIDs {
			if _, err := tx.Exec("DELETE FROM files WHERE folder_id = ?", id); err != nil {
				return err
			}
		}
		// Delete deepest-first so the parent FK never dangles
		for i := len(folderIDs) - 1; i >= 0; i-- {
			if _, err := tx.Exec("DELETE FROM folders WHERE id = ?", folderIDs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
