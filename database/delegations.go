package database

import (
	"arka/models"
	"database/sql"
	"time"
)

// ==================== DELEGATION OPERATIONS ====================

func (r *Repository) CreateDelegation(d *models.DelegationRequest) error {
	_, err := r.db.Exec(`
		INSERT INTO delegation_requests (id, requester_id, owner_id, target_type, target_id,
			level, reason, status, requested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.RequesterID, d.OwnerID, d.TargetType, d.TargetID,
		d.Level, d.Reason, d.Status, d.RequestedAt)
	return err
}

func (r *Repository) GetDelegation(delegationID string) (*models.DelegationRequest, error) {
	var d models.DelegationRequest
	err := r.db.QueryRow(`
		SELECT id, requester_id, owner_id, target_type, target_id,
			   level, reason, status, permission_id, requested_at, resolved_at, resolved_by
		FROM delegation_requests WHERE id = ?
	`, delegationID).Scan(&d.ID, &d.RequesterID, &d.OwnerID, &d.TargetType, &d.TargetID,
		&d.Level, &d.Reason, &d.Status, &d.PermissionID, &d.RequestedAt, &d.ResolvedAt, &d.ResolvedBy)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *Repository) GetDelegationsByRequester(requesterID string) ([]models.DelegationRequest, error) {
	return r.queryDelegations(`
		SELECT id, requester_id, owner_id, target_type, target_id,
			   level, reason, status, permission_id, requested_at, resolved_at, resolved_by
		FROM delegation_requests
		WHERE requester_id = ?
		ORDER BY requested_at DESC
	`, requesterID)
}

func (r *Repository) GetDelegationsByOwner(ownerID string) ([]models.DelegationRequest, error) {
	return r.queryDelegations(`
		SELECT id, requester_id, owner_id, target_type, target_id,
			   level, reason, status, permission_id, requested_at, resolved_at, resolved_by
		FROM delegation_requests
		WHERE owner_id = ?
		ORDER BY requested_at DESC
	`, ownerID)
}

func (r *Repository) GetPendingDelegationsForOwner(ownerID string) ([]models.DelegationRequest, error) {
	return r.queryDelegations(`
		SELECT id, requester_id, owner_id, target_type, target_id,
			   level, reason, status, permission_id, requested_at, resolved_at, resolved_by
		FROM delegation_requests
		WHERE owner_id = ? AND status = ?
		ORDER BY requested_at ASC
	`, ownerID, models.DelegationPending)
}

func (r *Repository) queryDelegations(query string, args ...interface{}) ([]models.DelegationRequest, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.DelegationRequest, 0)
	for rows.Next() {
		var d models.DelegationRequest
		if err := rows.Scan(&d.ID, &d.RequesterID, &d.OwnerID, &d.TargetType, &d.TargetID,
			&d.Level, &d.Reason, &d.Status, &d.PermissionID, &d.RequestedAt,
			&d.ResolvedAt, &d.ResolvedBy); err != nil {
			return nil, err
		}
		requests = append(requests, d)
	}

	return requests, rows.Err()
}

// ApproveDelegation marks the request approved and creates the granted
// permission in the same transaction.
func (r *Repository) ApproveDelegation(delegationID, resolverID string, perm *models.Permission) error {
	return r.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO permissions (id, owner_id, beneficiary_id, target_type, target_id,
				level, status, expires_at, granted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, perm.ID, perm.OwnerID, perm.BeneficiaryID, perm.TargetType, perm.TargetID,
			perm.Level, perm.Status, perm.ExpiresAt, perm.GrantedAt); err != nil {
			return err
		}

		_, err := tx.Exec(`
			UPDATE delegation_requests SET
				status = ?,
				permission_id = ?,
				resolved_at = ?,
				resolved_by = ?
			WHERE id = ?
		`, models.DelegationApproved, perm.ID, time.Now(), resolverID, delegationID)
		return err
	})
}

// ResolveDelegation records a terminal status (rejected or revoked).
func (r *Repository) ResolveDelegation(delegationID, status, resolverID string) error {
	_, err := r.db.Exec(`
		UPDATE delegation_requests SET
			status = ?,
			resolved_at = ?,
			resolved_by = ?
		WHERE id = ?
	`, status, time.Now(), resolverID, delegationID)
	return err
}

// RevokeDelegation flips the request to revoked and revokes the linked
// permission atomically.
func (r *Repository) RevokeDelegation(delegationID, permissionID, resolverID string) error {
	return r.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			UPDATE permissions SET status = ? WHERE id = ?
		`, models.PermissionRevoked, permissionID); err != nil {
			return err
		}

		_, err := tx.Exec(`
			UPDATE delegation_requests SET
				status = ?,
				resolved_at = ?,
				resolved_by = ?
			WHERE id = ?
		`, models.DelegationRevoked, time.Now(), resolverID, delegationID)
		return err
	})
}
