package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== CATEGORY OPERATIONS ====================

func (r *Repository) CreateCategory(category *models.Category) error {
	_, err := r.db.Exec(`
		INSERT INTO categories (id, space_id, name, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, category.ID, category.SpaceID, category.Name, category.Color,
		category.CreatedAt, category.UpdatedAt)
	return err
}

func (r *Repository) GetCategory(categoryID string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(`
		SELECT id, space_id, name, color, created_at, updated_at
		FROM categories WHERE id = ?
	`, categoryID).Scan(&c.ID, &c.SpaceID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *Repository) GetCategoryByName(spaceID, name string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(`
		SELECT id, space_id, name, color, created_at, updated_at
		FROM categories WHERE space_id = ? AND name = ?
	`, spaceID, name).Scan(&c.ID, &c.SpaceID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *Repository) GetCategoriesBySpace(spaceID string) ([]models.Category, error) {
	rows, err := r.db.Query(`
		SELECT id, space_id, name, color, created_at, updated_at
		FROM categories
		WHERE space_id = ?
		ORDER BY name ASC
	`, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.SpaceID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *Repository) UpdateCategory(categoryID, name, color string) error {
	_, err := r.db.Exec(`
		UPDATE categories SET
			name = ?,
			color = ?,
			updated_at = ?
		WHERE id = ?
	`, name, color, time.Now(), categoryID)
	return err
}

func (r *Repository) DeleteCategory(categoryID string) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE id = ?", categoryID)
	return err
}
