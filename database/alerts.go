package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== ALERT OPERATIONS ====================

func (r *Repository) CreateAlert(a *models.Alert) error {
	_, err := r.db.Exec(`
		INSERT INTO alerts (id, member_id, title, message, target_type, target_id,
			recurrence, next_trigger_at, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.MemberID, a.Title, a.Message, a.TargetType, a.TargetID,
		a.Recurrence, a.NextTriggerAt, boolToInt(a.Active), a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *Repository) GetAlert(alertID string) (*models.Alert, error) {
	var a models.Alert
	var active int
	err := r.db.QueryRow(`
		SELECT id, member_id, title, message, target_type, target_id,
			   recurrence, next_trigger_at, active, last_triggered_at, created_at, updated_at
		FROM alerts WHERE id = ?
	`, alertID).Scan(&a.ID, &a.MemberID, &a.Title, &a.Message, &a.TargetType, &a.TargetID,
		&a.Recurrence, &a.NextTriggerAt, &active, &a.LastTriggeredAt, &a.CreatedAt, &a.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	a.Active = active == 1
	return &a, nil
}

func (r *Repository) GetAlertsByMember(memberID string) ([]models.Alert, error) {
	return r.queryAlerts(`
		SELECT id, member_id, title, message, target_type, target_id,
			   recurrence, next_trigger_at, active, last_triggered_at, created_at, updated_at
		FROM alerts
		WHERE member_id = ?
		ORDER BY next_trigger_at ASC
	`, memberID)
}

// GetUpcomingAlerts returns a member's active alerts due before the horizon.
func (r *Repository) GetUpcomingAlerts(memberID string, horizon time.Time) ([]models.Alert, error) {
	return r.queryAlerts(`
		SELECT id, member_id, title, message, target_type, target_id,
			   recurrence, next_trigger_at, active, last_triggered_at, created_at, updated_at
		FROM alerts
		WHERE member_id = ? AND active = 1 AND next_trigger_at <= ?
		ORDER BY next_trigger_at ASC
	`, memberID, horizon)
}

// GetDueAlerts returns active alerts across all members whose trigger time
// has passed. Used by the scheduler.
func (r *Repository) GetDueAlerts(now time.Time, limit int) ([]models.Alert, error) {
	return r.queryAlerts(`
		SELECT id, member_id, title, message, target_type, target_id,
			   recurrence, next_trigger_at, active, last_triggered_at, created_at, updated_at
		FROM alerts
		WHERE active = 1 AND next_trigger_at <= ?
		ORDER BY next_trigger_at ASC
		LIMIT ?
	`, now, limit)
}

func (r *Repository) queryAlerts(query string, args ...interface{}) ([]models.Alert, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		var active int
		if err := rows.Scan(&a.ID, &a.MemberID, &a.Title, &a.Message, &a.TargetType, &a.TargetID,
			&a.Recurrence, &a.NextTriggerAt, &active, &a.LastTriggeredAt,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Active = active == 1
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

func (r *Repository) UpdateAlert(a *models.Alert) error {
	_, err := r.db.Exec(`
		UPDATE alerts SET
			title = ?,
			message = ?,
			recurrence = ?,
			next_trigger_at = ?,
			active = ?,
			updated_at = ?
		WHERE id = ?
	`, a.Title, a.Message, a.Recurrence, a.NextTriggerAt, boolToInt(a.Active),
		time.Now(), a.ID)
	return err
}

// MarkAlertTriggered records the firing and either advances the trigger or
// deactivates a one-shot alert.
func (r *Repository) MarkAlertTriggered(alertID string, firedAt, nextTrigger time.Time, stillActive bool) error {
	_, err := r.db.Exec(`
		UPDATE alerts SET
			last_triggered_at = ?,
			next_trigger_at = ?,
			active = ?,
			updated_at = ?
		WHERE id = ?
	`, firedAt, nextTrigger, boolToInt(stillActive), time.Now(), alertID)
	return err
}

func (r *Repository) DeleteAlert(alertID string) error {
	_, err := r.db.Exec("DELETE FROM alerts WHERE id = ?", alertID)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
