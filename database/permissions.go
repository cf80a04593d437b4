package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== PERMISSION OPERATIONS ====================

func (r *Repository) CreatePermission(p *models.Permission) error {
	_, err := r.db.Exec(`
		INSERT INTO permissions (id, owner_id, beneficiary_id, target_type, target_id,
			level, status, expires_at, granted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.OwnerID, p.BeneficiaryID, p.TargetType, p.TargetID,
		p.Level, p.Status, p.ExpiresAt, p.GrantedAt)
	return err
}

// CreatePermissionBatch grants the same target/level to several beneficiaries
// in one transaction.
func (r *Repository) CreatePermissionBatch(perms []models.Permission) error {
	return r.withTx(func(tx *sql.Tx) error {
		for _, p := range perms {
			if _, err := tx.Exec(`
				INSERT INTO permissions (id, owner_id, beneficiary_id, target_type, target_id,
					level, status, expires_at, granted_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, p.ID, p.OwnerID, p.BeneficiaryID, p.TargetType, p.TargetID,
				p.Level, p.Status, p.ExpiresAt, p.GrantedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetPermission(permissionID string) (*models.Permission, error) {
	var p models.Permission
	err := r.db.QueryRow(`
		SELECT id, owner_id, beneficiary_id, target_type, target_id,
			   level, status, expires_at, granted_at
		FROM permissions WHERE id = ?
	`, permissionID).Scan(&p.ID, &p.OwnerID, &p.BeneficiaryID, &p.TargetType,
		&p.TargetID, &p.Level, &p.Status, &p.ExpiresAt, &p.GrantedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetActivePermissionsForTargets returns a beneficiary's active, unexpired
// permissions covering any of the given (type, id) pairs. Targets are the
// entity itself plus its ancestor containers.
func (r *Repository) GetActivePermissionsForTargets(beneficiaryID string, targets []models.Target) ([]models.Permission, error) {
	perms := make([]models.Permission, 0)
	now := time.Now()

	for _, t := range targets {
		rows, err := r.db.Query(`
			SELECT id, owner_id, beneficiary_id, target_type, target_id,
				   level, status, expires_at, granted_at
			FROM permissions
			WHERE beneficiary_id = ? AND target_type = ? AND target_id = ?
			  AND status = ?
			  AND (expires_at IS NULL OR expires_at > ?)
		`, beneficiaryID, t.Type, t.ID, models.PermissionActive, now)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			var p models.Permission
			if err := rows.Scan(&p.ID, &p.OwnerID, &p.BeneficiaryID, &p.TargetType,
				&p.TargetID, &p.Level, &p.Status, &p.ExpiresAt, &p.GrantedAt); err != nil {
				rows.Close()
				return nil, err
			}
			perms = append(perms, p)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	return perms, nil
}

func (r *Repository) GetPermissionsByOwner(ownerID string) ([]models.Permission, error) {
	return r.queryPermissions(`
		SELECT id, owner_id, beneficiary_id, target_type, target_id,
			   level, status, expires_at, granted_at
		FROM permissions
		WHERE owner_id = ?
		ORDER BY granted_at DESC
	`, ownerID)
}

func (r *Repository) GetPermissionsByBeneficiary(beneficiaryID string) ([]models.Permission, error) {
	return r.queryPermissions(`
		SELECT id, owner_id, beneficiary_id, target_type, target_id,
			   level, status, expires_at, granted_at
		FROM permissions
		WHERE beneficiary_id = ?
		ORDER BY granted_at DESC
	`, beneficiaryID)
}

func (r *Repository) queryPermissions(query string, args ...interface{}) ([]models.Permission, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := make([]models.Permission, 0)
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.BeneficiaryID, &p.TargetType,
			&p.TargetID, &p.Level, &p.Status, &p.ExpiresAt, &p.GrantedAt); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}

	return perms, rows.Err()
}

// RevokePermission flips the status; the record stays for the audit trail.
func (r *Repository) RevokePermission(permissionID string) error {
	_, err := r.db.Exec(`
		UPDATE permissions SET status = ? WHERE id = ?
	`, models.PermissionRevoked, permissionID)
	return err
}
