package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DelegationService handles the request/approve/reject/revoke workflow
type DelegationService struct {
	repo        DelegationRepository
	permissions *PermissionService
	members     MemberRepository
	audit       *AuditService
}

// NewDelegationService creates a new delegation service
func NewDelegationService(repo DelegationRepository, permissions *PermissionService, members MemberRepository, audit *AuditService) *DelegationService {
	return &DelegationService{
		repo:        repo,
		permissions: permissions,
		members:     members,
		audit:       audit,
	}
}

// Create files a pending delegation request addressed to an owner.
func (ds *DelegationService) Create(actor *models.Session, req *models.CreateDelegationRequest) (*models.DelegationRequest, error) {
	if req.OwnerID == actor.MemberID {
		return nil, ErrSelfGrant
	}

	owner, err := ds.members.GetMember(req.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.FamilyID != actor.FamilyID {
		return nil, ErrMemberNotFound
	}

	// The target must exist before a request can reference it
	if _, err := ds.permissions.ResolveTargetChain(req.TargetType, req.TargetID); err != nil {
		return nil, err
	}

	delegation := &models.DelegationRequest{
		ID:          uuid.New().String(),
		RequesterID: actor.MemberID,
		OwnerID:     req.OwnerID,
		TargetType:  req.TargetType,
		TargetID:    req.TargetID,
		Level:       req.Level,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      models.DelegationPending,
		RequestedAt: time.Now(),
	}

	if err := ds.repo.CreateDelegation(delegation); err != nil {
		return nil, err
	}

	ds.audit.Record(actor.FamilyID, actor.MemberID, "delegation.request", "delegation", delegation.ID, delegation.Level)
	return delegation, nil
}

// Approve moves pending → approved and creates the granted permission in the
// same transaction.
func (ds *DelegationService) Approve(actor *models.Session, delegationID string) (*models.DelegationRequest, error) {
	delegation, err := ds.getForOwner(actor, delegationID)
	if err != nil {
		return nil, err
	}
	if delegation.Status != models.DelegationPending {
		return nil, ErrInvalidTransition
	}

	perm := &models.Permission{
		ID:            uuid.New().String(),
		OwnerID:       delegation.OwnerID,
		BeneficiaryID: delegation.RequesterID,
		TargetType:    delegation.TargetType,
		TargetID:      delegation.TargetID,
		Level:         delegation.Level,
		Status:        models.PermissionActive,
		GrantedAt:     time.Now(),
	}

	if err := ds.repo.ApproveDelegation(delegationID, actor.MemberID, perm); err != nil {
		return nil, err
	}

	ds.audit.Record(actor.FamilyID, actor.MemberID, "delegation.approve", "delegation", delegationID, delegation.Level)
	return ds.repo.GetDelegation(delegationID)
}

// Reject moves pending → rejected.
func (ds *DelegationService) Reject(actor *models.Session, delegationID string) (*models.DelegationRequest, error) {
	delegation, err := ds.getForOwner(actor, delegationID)
	if err != nil {
		return nil, err
	}
	if delegation.Status != models.DelegationPending {
		return nil, ErrInvalidTransition
	}

	if err := ds.repo.ResolveDelegation(delegationID, models.DelegationRejected, actor.MemberID); err != nil {
		return nil, err
	}

	ds.audit.Record(actor.FamilyID, actor.MemberID, "delegation.reject", "delegation", delegationID, "")
	return ds.repo.GetDelegation(delegationID)
}

// Revoke moves approved → revoked and revokes the linked permission.
func (ds *DelegationService) Revoke(actor *models.Session, delegationID string) (*models.DelegationRequest, error) {
	delegation, err := ds.getForOwner(actor, delegationID)
	if err != nil {
		return nil, err
	}
	if delegation.Status != models.DelegationApproved {
		return nil, ErrInvalidTransition
	}

	if delegation.PermissionID == nil {
		// Approved requests always carry their permission; guard anyway
		if err := ds.repo.ResolveDelegation(delegationID, models.DelegationRevoked, actor.MemberID); err != nil {
			return nil, err
		}
	} else {
		if err := ds.repo.RevokeDelegation(delegationID, *delegation.PermissionID, actor.MemberID); err != nil {
			return nil, err
		}
	}

	ds.audit.Record(actor.FamilyID, actor.MemberID, "delegation.revoke", "delegation", delegationID, "")
	return ds.repo.GetDelegation(delegationID)
}

// ListByRequester returns the requests a member has filed.
func (ds *DelegationService) ListByRequester(requesterID string) ([]models.DelegationRequest, error) {
	return ds.repo.GetDelegationsByRequester(requesterID)
}

// ListByOwner returns the requests addressed to a member.
func (ds *DelegationService) ListByOwner(ownerID string) ([]models.DelegationRequest, error) {
	return ds.repo.GetDelegationsByOwner(ownerID)
}

// ListPendingForOwner returns an owner's open inbox.
func (ds *DelegationService) ListPendingForOwner(ownerID string) ([]models.DelegationRequest, error) {
	return ds.repo.GetPendingDelegationsForOwner(ownerID)
}

// getForOwner loads a request and checks the caller is its addressee.
func (ds *DelegationService) getForOwner(actor *models.Session, delegationID string) (*models.DelegationRequest, error) {
	delegation, err := ds.repo.GetDelegation(delegationID)
	if err != nil {
		return nil, err
	}
	if delegation == nil {
		return nil, ErrDelegationNotFound
	}
	if delegation.OwnerID != actor.MemberID {
		return nil, ErrForbidden
	}
	return delegation, nil
}
