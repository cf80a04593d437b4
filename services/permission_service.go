package services

import (
	"arka/models"
	"time"

	"github.com/google/uuid"
)

// sufficientLevels maps a requested level to the granted levels that satisfy
// it. A stronger grant always covers a weaker request.
var sufficientLevels = map[string]map[string]bool{
	models.LevelView: {
		models.LevelView:       true,
		models.LevelContribute: true,
		models.LevelManage:     true,
	},
	models.LevelContribute: {
		models.LevelContribute: true,
		models.LevelManage:     true,
	},
	models.LevelManage: {
		models.LevelManage: true,
	},
}

// LevelSatisfies reports whether a granted level covers a requested one.
func LevelSatisfies(granted, requested string) bool {
	return sufficientLevels[requested][granted]
}

// PermissionService handles active permissions and effective-access checks
type PermissionService struct {
	repo     PermissionRepository
	resolver TargetResolver
	members  MemberRepository
	audit    *AuditService
}

// NewPermissionService creates a new permission service
func NewPermissionService(repo PermissionRepository, resolver TargetResolver, members MemberRepository, audit *AuditService) *PermissionService {
	return &PermissionService{
		repo:     repo,
		resolver: resolver,
		members:  members,
		audit:    audit,
	}
}

// Grant creates active permissions for one or more beneficiaries in a single
// transaction. The expiration date, when set, must lie in the future.
func (ps *PermissionService) Grant(actor *models.Session, req *models.GrantPermissionRequest) ([]models.Permission, error) {
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpiryInPast
	}

	if _, err := ps.ResolveTargetChain(req.TargetType, req.TargetID); err != nil {
		return nil, err
	}

	now := time.Now()
	perms := make([]models.Permission, 0, len(req.BeneficiaryIDs))
	for _, beneficiaryID := range req.BeneficiaryIDs {
		if beneficiaryID == actor.MemberID {
			return nil, ErrSelfGrant
		}

		member, err := ps.members.GetMember(beneficiaryID)
		if err != nil {
			return nil, err
		}
		if member == nil || member.FamilyID != actor.FamilyID {
			return nil, ErrMemberNotFound
		}

		perms = append(perms, models.Permission{
			ID:            uuid.New().String(),
			OwnerID:       actor.MemberID,
			BeneficiaryID: beneficiaryID,
			TargetType:    req.TargetType,
			TargetID:      req.TargetID,
			Level:         req.Level,
			Status:        models.PermissionActive,
			ExpiresAt:     req.ExpiresAt,
			GrantedAt:     now,
		})
	}

	if err := ps.repo.CreatePermissionBatch(perms); err != nil {
		return nil, err
	}

	for _, p := range perms {
		ps.audit.Record(actor.FamilyID, actor.MemberID, "permission.grant", "permission", p.ID, p.Level)
	}
	return perms, nil
}

// Revoke flips a permission the caller owns to revoked.
func (ps *PermissionService) Revoke(actor *models.Session, permissionID string) error {
	perm, err := ps.repo.GetPermission(permissionID)
	if err != nil {
		return err
	}
	if perm == nil {
		return ErrPermissionNotFound
	}
	if perm.OwnerID != actor.MemberID && actor.Role != models.RoleOwner {
		return ErrForbidden
	}

	if err := ps.repo.RevokePermission(permissionID); err != nil {
		return err
	}

	ps.audit.Record(actor.FamilyID, actor.MemberID, "permission.revoke", "permission", permissionID, "")
	return nil
}

// ListGrantedBy returns the permissions a member has granted.
func (ps *PermissionService) ListGrantedBy(ownerID string) ([]models.Permission, error) {
	return ps.repo.GetPermissionsByOwner(ownerID)
}

// ListGrantedTo returns the permissions a member benefits from.
func (ps *PermissionService) ListGrantedTo(beneficiaryID string) ([]models.Permission, error) {
	return ps.repo.GetPermissionsByBeneficiary(beneficiaryID)
}

// HasAccess reports whether a member holds the requested level on the target,
// either directly or through any ancestor container.
func (ps *PermissionService) HasAccess(memberID, targetType, targetID, level string) (bool, error) {
	targets, err := ps.ResolveTargetChain(targetType, targetID)
	if err != nil {
		return false, err
	}

	perms, err := ps.repo.GetActivePermissionsForTargets(memberID, targets)
	if err != nil {
		return false, err
	}

	for _, p := range perms {
		if LevelSatisfies(p.Level, level) {
			return true, nil
		}
	}
	return false, nil
}

// ResolveTargetChain returns the target itself followed by its ancestor
// containers, up to the space.
func (ps *PermissionService) ResolveTargetChain(targetType, targetID string) ([]models.Target, error) {
	targets := []models.Target{{Type: targetType, ID: targetID}}

	switch targetType {
	case models.TargetFile:
		file, err := ps.resolver.GetFile(targetID)
		if err != nil {
			return nil, err
		}
		if file == nil {
			return nil, ErrFileNotFound
		}
		parents, err := ps.folderChain(file.FolderID)
		if err != nil {
			return nil, err
		}
		return append(targets, parents...), nil

	case models.TargetFolder:
		folder, err := ps.resolver.GetFolder(targetID)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, ErrFolderNotFound
		}
		parents, err := ps.folderAncestors(folder)
		if err != nil {
			return nil, err
		}
		return append(targets, parents...), nil

	case models.TargetCategory:
		category, err := ps.resolver.GetCategory(targetID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		return append(targets, models.Target{Type: models.TargetSpace, ID: category.SpaceID}), nil

	case models.TargetSpace:
		space, err := ps.resolver.GetSpace(targetID)
		if err != nil {
			return nil, err
		}
		if space == nil {
			return nil, ErrSpaceNotFound
		}
		return targets, nil
	}

	return targets, nil
}

// folderChain resolves a folder id into its full container chain.
func (ps *PermissionService) folderChain(folderID string) ([]models.Target, error) {
	folder, err := ps.resolver.GetFolder(folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	targets := []models.Target{{Type: models.TargetFolder, ID: folder.ID}}
	parents, err := ps.folderAncestors(folder)
	if err != nil {
		return nil, err
	}
	return append(targets, parents...), nil
}

// folderAncestors walks parent pointers upward, then appends the category
// and its space.
func (ps *PermissionService) folderAncestors(folder *models.Folder) ([]models.Target, error) {
	targets := make([]models.Target, 0)

	current := folder
	for current.ParentID != nil {
		parent, err := ps.resolver.GetFolder(*current.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			break
		}
		targets = append(targets, models.Target{Type: models.TargetFolder, ID: parent.ID})
		current = parent
	}

	category, err := ps.resolver.GetCategory(folder.CategoryID)
	if err != nil {
		return nil, err
	}
	if category != nil {
		targets = append(targets, models.Target{Type: models.TargetCategory, ID: category.ID})
		targets = append(targets, models.Target{Type: models.TargetSpace, ID: category.SpaceID})
	}

	return targets, nil
}
