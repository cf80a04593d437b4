package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== SPACE OPERATIONS ====================

// CreateSpace inserts the space and its creator's access record atomically.
func (r *Repository) CreateSpace(space *models.Space) error {
	return r.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO spaces (id, family_id, name, description, created_by, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, space.ID, space.FamilyID, space.Name, space.Description,
			space.CreatedBy, space.CreatedAt, space.UpdatedAt); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO space_access (space_id, member_id, can_manage, created_at)
			VALUES (?, ?, 1, ?)
		`, space.ID, space.CreatedBy, time.Now())
		return err
	})
}

func (r *Repository) GetSpace(spaceID string) (*models.Space, error) {
	var s models.Space
	err := r.db.QueryRow(`
		SELECT id, family_id, name, description, created_by, created_at, updated_at
		FROM spaces WHERE id = ?
	`, spaceID).Scan(&s.ID, &s.FamilyID, &s.Name, &s.Description,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repository) GetSpaceByName(familyID, name string) (*models.Space, error) {
	var s models.Space
	err := r.db.QueryRow(`
		SELECT id, family_id, name, description, created_by, created_at, updated_at
		FROM spaces WHERE family_id = ? AND name = ?
	`, familyID, name).Scan(&s.ID, &s.FamilyID, &s.Name, &s.Description,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// GetSpacesForMember returns the spaces a member has an access record for.
func (r *Repository) GetSpacesForMember(memberID string) ([]models.Space, error) {
	rows, err := r.db.Query(`
		SELECT s.id, s.family_id, s.name, s.description, s.created_by, s.created_at, s.updated_at
		FROM spaces s
		JOIN space_access a ON a.space_id = s.id
		WHERE a.member_id = ?
		ORDER BY s.created_at ASC
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spaces := make([]models.Space, 0)
	for rows.Next() {
		var s models.Space
		if err := rows.Scan(&s.ID, &s.FamilyID, &s.Name, &s.Description,
			&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		spaces = append(spaces, s)
	}

	return spaces, rows.Err()
}

func (r *Repository) GetSpacesByFamily(familyID string) ([]models.Space, error) {
	rows, err := r.db.Query(`
		SELECT id, family_id, name, description, created_by, created_at, updated_at
		FROM spaces
		WHERE family_id = ?
		ORDER BY created_at ASC
	`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spaces := make([]models.Space, 0)
	for rows.Next() {
		var s models.Space
		if err := rows.Scan(&s.ID, &s.FamilyID, &s.Name, &s.Description,
			&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		spaces = append(spaces, s)
	}

	return spaces, rows.Err()
}

func (r *Repository) UpdateSpace(spaceID, name, description string) error {
	_, err := r.db.Exec(`
		UPDATE spaces SET
			name = ?,
			description = ?,
			updated_at = ?
		WHERE id = ?
	`, name, description, time.Now(), spaceID)
	return err
}

func (r *Repository) DeleteSpace(spaceID string) error {
	_, err := r.db.Exec("DELETE FROM spaces WHERE id = ?", spaceID)
	return err
}

// ==================== SPACE ACCESS OPERATIONS ====================

// GrantSpaceAccess upserts access records for several members in one transaction.
func (r *Repository) GrantSpaceAccess(spaceID string, memberIDs []string, canManage bool) error {
	return r.withTx(func(tx *sql.Tx) error {
		for _, memberID := range memberIDs {
			if _, err := tx.Exec(`
				INSERT INTO space_access (space_id, member_id, can_manage, created_at)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(space_id, member_id) DO UPDATE SET
					can_manage = excluded.can_manage
			`, spaceID, memberID, canManage, time.Now()); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) RevokeSpaceAccess(spaceID, memberID string) error {
	_, err := r.db.Exec(`
		DELETE FROM space_access WHERE space_id = ? AND member_id = ?
	`, spaceID, memberID)
	return err
}

func (r *Repository) GetSpaceAccess(spaceID, memberID string) (*models.SpaceAccess, error) {
	var a models.SpaceAccess
	var canManage int
	err := r.db.QueryRow(`
		SELECT space_id, member_id, can_manage, created_at
		FROM space_access WHERE space_id = ? AND member_id = ?
	`, spaceID, memberID).Scan(&a.SpaceID, &a.MemberID, &canManage, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	a.CanManage = canManage == 1
	return &a, nil
}

func (r *Repository) GetSpaceAccessList(spaceID string) ([]models.SpaceAccess, error) {
	rows, err := r.db.Query(`
		SELECT space_id, member_id, can_manage, created_at
		FROM space_access
		WHERE space_id = ?
		ORDER BY created_at ASC
	`, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.SpaceAccess, 0)
	for rows.Next() {
		var a models.SpaceAccess
		var canManage int
		if err := rows.Scan(&a.SpaceID, &a.MemberID, &canManage, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.CanManage = canManage == 1
		records = append(records, a)
	}

	return records, rows.Err()
}
