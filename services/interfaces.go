package services

import (
	"arka/models"
	"time"
)

// MemberRepository defines the interface for family and member data access
type MemberRepository interface {
	CreateFamilyWithOwner(family *models.Family, owner *models.Member) error
	GetFamily(familyID string) (*models.Family, error)
	UpdateFamilyName(familyID, name string) error
	CreateMember(member *models.Member) error
	GetMember(memberID string) (*models.Member, error)
	GetMemberByEmail(email string) (*models.Member, error)
	GetMembersByFamily(familyID string) ([]models.Member, error)
	UpdateMember(memberID, name, role, color string) error
	DeleteMember(memberID string) error
	CountFamilyOwners(familyID string) (int, error)
}

// SpaceRepository defines the interface for space data access
type SpaceRepository interface {
	CreateSpace(space *models.Space) error
	GetSpace(spaceID string) (*models.Space, error)
	GetSpaceByName(familyID, name string) (*models.Space, error)
	GetSpacesForMember(memberID string) ([]models.Space, error)
	GetSpacesByFamily(familyID string) ([]models.Space, error)
	UpdateSpace(spaceID, name, description string) error
	DeleteSpace(spaceID string) error
	GrantSpaceAccess(spaceID string, memberIDs []string, canManage bool) error
	RevokeSpaceAccess(spaceID, memberID string) error
	GetSpaceAccess(spaceID, memberID string) (*models.SpaceAccess, error)
	GetSpaceAccessList(spaceID string) ([]models.SpaceAccess, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	CreateCategory(category *models.Category) error
	GetCategory(categoryID string) (*models.Category, error)
	GetCategoryByName(spaceID, name string) (*models.Category, error)
	GetCategoriesBySpace(spaceID string) ([]models.Category, error)
	UpdateCategory(categoryID, name, color string) error
	DeleteCategory(categoryID string) error
}

// FolderRepository defines the interface for folder data access
type FolderRepository interface {
	CreateFolder(folder *models.Folder) error
	GetFolder(folderID string) (*models.Folder, error)
	GetFolderByName(categoryID string, parentID *string, name string) (*models.Folder, error)
	GetChildFolders(categoryID string, parentID *string) ([]models.Folder, error)
	RenameFolder(folderID, name string) error
	MoveFolder(folderID string, parentID *string) error
	DeleteFolderTree(folderIDs []string) error
	GetFilesByFolder(folderID string) ([]models.File, error)
}

// FileRepository defines the interface for file metadata access
type FileRepository interface {
	CreateFile(file *models.File) error
	GetFile(fileID string) (*models.File, error)
	GetFileByName(folderID, name string) (*models.File, error)
	GetFilesByFolder(folderID string) ([]models.File, error)
	SearchFilesInSpace(spaceID, query string, limit int) ([]models.File, error)
	RenameFile(fileID, name string) error
	MoveFile(fileID, folderID string) error
	UpdateFileDescription(fileID, description string) error
	DeleteFile(fileID string) error
	GetFolder(folderID string) (*models.Folder, error)
}

// PermissionRepository defines the interface for permission data access
type PermissionRepository interface {
	CreatePermission(p *models.Permission) error
	CreatePermissionBatch(perms []models.Permission) error
	GetPermission(permissionID string) (*models.Permission, error)
	GetActivePermissionsForTargets(beneficiaryID string, targets []models.Target) ([]models.Permission, error)
	GetPermissionsByOwner(ownerID string) ([]models.Permission, error)
	GetPermissionsByBeneficiary(beneficiaryID string) ([]models.Permission, error)
	RevokePermission(permissionID string) error
}

// TargetResolver walks an entity's containment chain (file → folder chain →
// category → space) for effective-access checks.
type TargetResolver interface {
	GetFile(fileID string) (*models.File, error)
	GetFolder(folderID string) (*models.Folder, error)
	GetCategory(categoryID string) (*models.Category, error)
	GetSpace(spaceID string) (*models.Space, error)
}

// DelegationRepository defines the interface for delegation request data access
type DelegationRepository interface {
	CreateDelegation(d *models.DelegationRequest) error
	GetDelegation(delegationID string) (*models.DelegationRequest, error)
	GetDelegationsByRequester(requesterID string) ([]models.DelegationRequest, error)
	GetDelegationsByOwner(ownerID string) ([]models.DelegationRequest, error)
	GetPendingDelegationsForOwner(ownerID string) ([]models.DelegationRequest, error)
	ApproveDelegation(delegationID, resolverID string, perm *models.Permission) error
	ResolveDelegation(delegationID, status, resolverID string) error
	RevokeDelegation(delegationID, permissionID, resolverID string) error
}

// AlertRepository defines the interface for alert data access
type AlertRepository interface {
	CreateAlert(a *models.Alert) error
	GetAlert(alertID string) (*models.Alert, error)
	GetAlertsByMember(memberID string) ([]models.Alert, error)
	GetUpcomingAlerts(memberID string, horizon time.Time) ([]models.Alert, error)
	GetDueAlerts(now time.Time, limit int) ([]models.Alert, error)
	UpdateAlert(a *models.Alert) error
	MarkAlertTriggered(alertID string, firedAt, nextTrigger time.Time, stillActive bool) error
	DeleteAlert(alertID string) error
}

// AuditRepository defines the interface for the append-only activity log
type AuditRepository interface {
	AppendAuditEntry(e *models.AuditEntry) error
	GetAuditEntries(familyID, entityType string, limit, offset int) ([]models.AuditEntry, error)
}

// BlobStore abstracts where uploaded file content lives
type BlobStore interface {
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(member *models.Member) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
	DeleteByMember(memberID string)
}
