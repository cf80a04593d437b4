package services

import (
	"arka/models"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// AuditService appends entries to the family activity log. Recording is
// best-effort: a failed append is logged and never fails the operation
// that produced it.
type AuditService struct {
	repo AuditRepository
}

func NewAuditService(repo AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Record appends an audit entry for a mutation.
func (as *AuditService) Record(familyID, memberID, action, entityType, entityID, detail string) {
	entry := &models.AuditEntry{
		ID:         uuid.New().String(),
		FamilyID:   familyID,
		MemberID:   memberID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}

	if err := as.repo.AppendAuditEntry(entry); err != nil {
		slog.Error("failed to append audit entry",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err,
		)
	}
}

// List returns the family's activity log, newest first.
func (as *AuditService) List(familyID, entityType string, limit, offset int) ([]models.AuditEntry, error) {
	return as.repo.GetAuditEntries(familyID, entityType, limit, offset)
}
