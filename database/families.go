package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== FAMILY OPERATIONS ====================

// CreateFamilyWithOwner inserts a family and its owner member atomically.
func (r *Repository) CreateFamilyWithOwner(family *models.Family, owner *models.Member) error {
	return r.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO families (id, name, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, family.ID, family.Name, family.CreatedAt, family.UpdatedAt); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO members (id, family_id, name, email, password_hash, role, color, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, owner.ID, family.ID, owner.Name, owner.Email, owner.PasswordHash,
			owner.Role, owner.Color, owner.CreatedAt, owner.UpdatedAt)
		return err
	})
}

func (r *Repository) GetFamily(familyID string) (*models.Family, error) {
	var family models.Family
	err := r.db.QueryRow(`
		SELECT id, name, created_at, updated_at
		FROM families WHERE id = ?
	`, familyID).Scan(&family.ID, &family.Name, &family.CreatedAt, &family.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &family, nil
}

func (r *Repository) UpdateFamilyName(familyID, name string) error {
	_, err := r.db.Exec(`
		UPDATE families SET name = ?, updated_at = ? WHERE id = ?
	`, name, time.Now(), familyID)
	return err
}

// ==================== MEMBER OPERATIONS ====================

func (r *Repository) CreateMember(member *models.Member) error {
	_, err := r.db.Exec(`
		INSERT INTO members (id, family_id, name, email, password_hash, role, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, member.ID, member.FamilyID, member.Name, member.Email, member.PasswordHash,
		member.Role, member.Color, member.CreatedAt, member.UpdatedAt)
	return err
}

func (r *Repository) GetMember(memberID string) (*models.Member, error) {
	var m models.Member
	err := r.db.QueryRow(`
		SELECT id, family_id, name, email, password_hash, role, color, created_at, updated_at
		FROM members WHERE id = ?
	`, memberID).Scan(&m.ID, &m.FamilyID, &m.Name, &m.Email, &m.PasswordHash,
		&m.Role, &m.Color, &m.CreatedAt, &m.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *Repository) GetMemberByEmail(email string) (*models.Member, error) {
	var m models.Member
	err := r.db.QueryRow(`
		SELECT id, family_id, name, email, password_hash, role, color, created_at, updated_at
		FROM members WHERE email = ?
	`, email).Scan(&m.ID, &m.FamilyID, &m.Name, &m.Email, &m.PasswordHash,
		&m.Role, &m.Color, &m.CreatedAt, &m.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *Repository) GetMembersByFamily(familyID string) ([]models.Member, error) {
	rows, err := r.db.Query(`
		SELECT id, family_id, name, email, password_hash, role, color, created_at, updated_at
		FROM members
		WHERE family_id = ?
		ORDER BY created_at ASC
	`, familyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	members := make([]models.Member, 0)
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.Name, &m.Email, &m.PasswordHash,
			&m.Role, &m.Color, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *Repository) UpdateMember(memberID, name, role, color string) error {
	_, err := r.db.Exec(`
		UPDATE members SET
			name = ?,
			role = ?,
			color = ?,
			updated_at = ?
		WHERE id = ?
	`, name, role, color, time.Now(), memberID)
	return err
}

func (r *Repository) DeleteMember(memberID string) error {
	_, err := r.db.Exec("DELETE FROM members WHERE id = ?", memberID)
	return err
}

func (r *Repository) CountFamilyOwners(familyID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM members WHERE family_id = ? AND role = ?
	`, familyID, models.RoleOwner).Scan(&count)
	return count, err
}
