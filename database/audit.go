package database

import (
	"arka/models"
)

// ==================== AUDIT LOG OPERATIONS ====================

func (r *Repository) AppendAuditEntry(e *models.AuditEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO audit_log (id, family_id, member_id, action, entity_type, entity_id, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.FamilyID, e.MemberID, e.Action, e.EntityType, e.EntityID, e.Detail, e.CreatedAt)
	return err
}

func (r *Repository) GetAuditEntries(familyID, entityType string, limit, offset int) ([]models.AuditEntry, error) {
	query := `
		SELECT id, family_id, member_id, action, entity_type, entity_id, detail, created_at
		FROM audit_log
		WHERE family_id = ?
	`
	args := []interface{}{familyID}

	if entityType != "" {
		query += " AND entity_type = ?"
		args = append(args, entityType)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0)
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.FamilyID, &e.MemberID, &e.Action,
			&e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
