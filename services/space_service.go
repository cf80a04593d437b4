package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SpaceService handles business logic for spaces and space access records
type SpaceService struct {
	repo    SpaceRepository
	members MemberRepository
	audit   *AuditService
}

// NewSpaceService creates a new space service
func NewSpaceService(repo SpaceRepository, members MemberRepository, audit *AuditService) *SpaceService {
	return &SpaceService{
		repo:    repo,
		members: members,
		audit:   audit,
	}
}

// Create creates a space; the creator gets a managing access record.
func (ss *SpaceService) Create(actor *models.Session, req *models.CreateSpaceRequest) (*models.Space, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := ss.repo.GetSpaceByName(actor.FamilyID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSpaceAlreadyExists
	}

	now := time.Now()
	space := &models.Space{
		ID:          uuid.New().String(),
		FamilyID:    actor.FamilyID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   actor.MemberID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ss.repo.CreateSpace(space); err != nil {
		return nil, err
	}

	ss.audit.Record(actor.FamilyID, actor.MemberID, "space.create", "space", space.ID, space.Name)
	return space, nil
}

// List returns the spaces visible to the caller. The family owner sees all
// spaces; everyone else sees only those they hold an access record for.
func (ss *SpaceService) List(actor *models.Session) ([]models.Space, error) {
	if actor.Role == models.RoleOwner {
		return ss.repo.GetSpacesByFamily(actor.FamilyID)
	}
	return ss.repo.GetSpacesForMember(actor.MemberID)
}

// Get returns a space the caller can see.
func (ss *SpaceService) Get(actor *models.Session, spaceID string) (*models.Space, error) {
	space, err := ss.repo.GetSpace(spaceID)
	if err != nil {
		return nil, err
	}
	if space == nil || space.FamilyID != actor.FamilyID {
		return nil, ErrSpaceNotFound
	}

	if actor.Role != models.RoleOwner {
		access, err := ss.repo.GetSpaceAccess(spaceID, actor.MemberID)
		if err != nil {
			return nil, err
		}
		if access == nil {
			return nil, ErrNoSpaceAccess
		}
	}

	return space, nil
}

// Update renames and re-describes a space. Requires manage access.
func (ss *SpaceService) Update(actor *models.Session, spaceID string, req *models.UpdateSpaceRequest) (*models.Space, error) {
	space, err := ss.requireManage(actor, spaceID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != space.Name {
		dup, err := ss.repo.GetSpaceByName(actor.FamilyID, name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, ErrSpaceAlreadyExists
		}
	}

	if err := ss.repo.UpdateSpace(spaceID, name, strings.TrimSpace(req.Description)); err != nil {
		return nil, err
	}

	ss.audit.Record(actor.FamilyID, actor.MemberID, "space.update", "space", spaceID, name)
	return ss.repo.GetSpace(spaceID)
}

// Delete removes a space; foreign keys cascade to categories, folders, files.
func (ss *SpaceService) Delete(actor *models.Session, spaceID string) error {
	space, err := ss.requireManage(actor, spaceID)
	if err != nil {
		return err
	}

	if err := ss.repo.DeleteSpace(spaceID); err != nil {
		return err
	}

	ss.audit.Record(actor.FamilyID, actor.MemberID, "space.delete", "space", spaceID, space.Name)
	return nil
}

// GrantAccess gives several family members access in one transaction.
func (ss *SpaceService) GrantAccess(actor *models.Session, spaceID string, req *models.GrantSpaceAccessRequest) error {
	if _, err := ss.requireManage(actor, spaceID); err != nil {
		return err
	}

	// Every beneficiary must belong to the same family
	for _, memberID := range req.MemberIDs {
		member, err := ss.members.GetMember(memberID)
		if err != nil {
			return err
		}
		if member == nil || member.FamilyID != actor.FamilyID {
			return ErrMemberNotFound
		}
	}

	if err := ss.repo.GrantSpaceAccess(spaceID, req.MemberIDs, req.CanManage); err != nil {
		return err
	}

	ss.audit.Record(actor.FamilyID, actor.MemberID, "space.grant_access", "space", spaceID, "")
	return nil
}

// RevokeAccess removes a member's access record.
func (ss *SpaceService) RevokeAccess(actor *models.Session, spaceID, memberID string) error {
	space, err := ss.requireManage(actor, spaceID)
	if err != nil {
		return err
	}
	// The creator's access record is the anchor for the space
	if memberID == space.CreatedBy {
		return ErrForbidden
	}

	if err := ss.repo.RevokeSpaceAccess(spaceID, memberID); err != nil {
		return err
	}

	ss.audit.Record(actor.FamilyID, actor.MemberID, "space.revoke_access", "space", spaceID, memberID)
	return nil
}

// AccessList returns the access records of a space.
func (ss *SpaceService) AccessList(actor *models.Session, spaceID string) ([]models.SpaceAccess, error) {
	if _, err := ss.Get(actor, spaceID); err != nil {
		return nil, err
	}
	return ss.repo.GetSpaceAccessList(spaceID)
}

// requireManage loads the space and checks the caller may administer it.
func (ss *SpaceService) requireManage(actor *models.Session, spaceID string) (*models.Space, error) {
	space, err := ss.repo.GetSpace(spaceID)
	if err != nil {
		return nil, err
	}
	if space == nil || space.FamilyID != actor.FamilyID {
		return nil, ErrSpaceNotFound
	}

	if actor.Role == models.RoleOwner {
		return space, nil
	}

	access, err := ss.repo.GetSpaceAccess(spaceID, actor.MemberID)
	if err != nil {
		return nil, err
	}
	if access == nil || !access.CanManage {
		return nil, ErrForbidden
	}

	return space, nil
}
