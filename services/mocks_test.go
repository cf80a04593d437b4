package services

import (
	"arka/models"
	"time"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockMemberRepository is a mock implementation of MemberRepository interface
type MockMemberRepository struct {
	mock.Mock
}

var _ MemberRepository = (*MockMemberRepository)(nil)

func (m *MockMemberRepository) CreateFamilyWithOwner(family *models.Family, owner *models.Member) error {
	args := m.Called(family, owner)
	return args.Error(0)
}

func (m *MockMemberRepository) GetFamily(familyID string) (*models.Family, error) {
	args := m.Called(familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Family), args.Error(1)
}

func (m *MockMemberRepository) UpdateFamilyName(familyID, name string) error {
	args := m.Called(familyID, name)
	return args.Error(0)
}

func (m *MockMemberRepository) CreateMember(member *models.Member) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetMember(memberID string) (*models.Member, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) GetMemberByEmail(email string) (*models.Member, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) GetMembersByFamily(familyID string) ([]models.Member, error) {
	args := m.Called(familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(memberID, name, role, color string) error {
	args := m.Called(memberID, name, role, color)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(memberID string) error {
	args := m.Called(memberID)
	return args.Error(0)
}

func (m *MockMemberRepository) CountFamilyOwners(familyID string) (int, error) {
	args := m.Called(familyID)
	return args.Int(0), args.Error(1)
}

// MockSpaceRepository is a mock implementation of SpaceRepository interface
type MockSpaceRepository struct {
	mock.Mock
}

var _ SpaceRepository = (*MockSpaceRepository)(nil)

func (m *MockSpaceRepository) CreateSpace(space *models.Space) error {
	args := m.Called(space)
	return args.Error(0)
}

func (m *MockSpaceRepository) GetSpace(spaceID string) (*models.Space, error) {
	args := m.Called(spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

func (m *MockSpaceRepository) GetSpaceByName(familyID, name string) (*models.Space, error) {
	args := m.Called(familyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

func (m *MockSpaceRepository) GetSpacesForMember(memberID string) ([]models.Space, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Space), args.Error(1)
}

func (m *MockSpaceRepository) GetSpacesByFamily(familyID string) ([]models.Space, error) {
	args := m.Called(familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Space), args.Error(1)
}

func (m *MockSpaceRepository) UpdateSpace(spaceID, name, description string) error {
	args := m.Called(spaceID, name, description)
	return args.Error(0)
}

func (m *MockSpaceRepository) DeleteSpace(spaceID string) error {
	args := m.Called(spaceID)
	return args.Error(0)
}

func (m *MockSpaceRepository) GrantSpaceAccess(spaceID string, memberIDs []string, canManage bool) error {
	args := m.Called(spaceID, memberIDs, canManage)
	return args.Error(0)
}

func (m *MockSpaceRepository) RevokeSpaceAccess(spaceID, memberID string) error {
	args := m.Called(spaceID, memberID)
	return args.Error(0)
}

func (m *MockSpaceRepository) GetSpaceAccess(spaceID, memberID string) (*models.SpaceAccess, error) {
	args := m.Called(spaceID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpaceAccess), args.Error(1)
}

func (m *MockSpaceRepository) GetSpaceAccessList(spaceID string) ([]models.SpaceAccess, error) {
	args := m.Called(spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SpaceAccess), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

var _ CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetCategory(categoryID string) (*models.Category, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoryByName(spaceID, name string) (*models.Category, error) {
	args := m.Called(spaceID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoriesBySpace(spaceID string) ([]models.Category, error) {
	args := m.Called(spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(categoryID, name, color string) error {
	args := m.Called(categoryID, name, color)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(categoryID string) error {
	args := m.Called(categoryID)
	return args.Error(0)
}

// MockFolderRepository is a mock implementation of FolderRepository interface
type MockFolderRepository struct {
	mock.Mock
}

var _ FolderRepository = (*MockFolderRepository)(nil)

func (m *MockFolderRepository) CreateFolder(folder *models.Folder) error {
	args := m.Called(folder)
	return args.Error(0)
}

func (m *MockFolderRepository) GetFolder(folderID string) (*models.Folder, error) {
	args := m.Called(folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *MockFolderRepository) GetFolderByName(categoryID string, parentID *string, name string) (*models.Folder, error) {
	args := m.Called(categoryID, parentID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *MockFolderRepository) GetChildFolders(categoryID string, parentID *string) ([]models.Folder, error) {
	args := m.Called(categoryID, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *MockFolderRepository) RenameFolder(folderID, name string) error {
	args := m.Called(folderID, name)
	return args.Error(0)
}

func (m *MockFolderRepository) MoveFolder(folderID string, parentID *string) error {
	args := m.Called(folderID, parentID)
	return args.Error(0)
}

func (m *MockFolderRepository) DeleteFolderTree(folderIDs []string) error {
	args := m.Called(folderIDs)
	return args.Error(0)
}

func (m *MockFolderRepository) GetFilesByFolder(folderID string) ([]models.File, error) {
	args := m.Called(folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.File), args.Error(1)
}

// MockPermissionRepository is a mock implementation of PermissionRepository interface
type MockPermissionRepository struct {
	mock.Mock
}

var _ PermissionRepository = (*MockPermissionRepository)(nil)

func (m *MockPermissionRepository) CreatePermission(p *models.Permission) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPermissionRepository) CreatePermissionBatch(perms []models.Permission) error {
	args := m.Called(perms)
	return args.Error(0)
}

func (m *MockPermissionRepository) GetPermission(permissionID string) (*models.Permission, error) {
	args := m.Called(permissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) GetActivePermissionsForTargets(beneficiaryID string, targets []models.Target) ([]models.Permission, error) {
	args := m.Called(beneficiaryID, targets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) GetPermissionsByOwner(ownerID string) ([]models.Permission, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) GetPermissionsByBeneficiary(beneficiaryID string) ([]models.Permission, error) {
	args := m.Called(beneficiaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) RevokePermission(permissionID string) error {
	args := m.Called(permissionID)
	return args.Error(0)
}

// MockTargetResolver is a mock implementation of TargetResolver interface
type MockTargetResolver struct {
	mock.Mock
}

var _ TargetResolver = (*MockTargetResolver)(nil)

func (m *MockTargetResolver) GetFile(fileID string) (*models.File, error) {
	args := m.Called(fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.File), args.Error(1)
}

func (m *MockTargetResolver) GetFolder(folderID string) (*models.Folder, error) {
	args := m.Called(folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *MockTargetResolver) GetCategory(categoryID string) (*models.Category, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockTargetResolver) GetSpace(spaceID string) (*models.Space, error) {
	args := m.Called(spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

// MockDelegationRepository is a mock implementation of DelegationRepository interface
type MockDelegationRepository struct {
	mock.Mock
}

var _ DelegationRepository = (*MockDelegationRepository)(nil)

func (m *MockDelegationRepository) CreateDelegation(d *models.DelegationRequest) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockDelegationRepository) GetDelegation(delegationID string) (*models.DelegationRequest, error) {
	args := m.Called(delegationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DelegationRequest), args.Error(1)
}

func (m *MockDelegationRepository) GetDelegationsByRequester(requesterID string) ([]models.DelegationRequest, error) {
	args := m.Called(requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DelegationRequest), args.Error(1)
}

func (m *MockDelegationRepository) GetDelegationsByOwner(ownerID string) ([]models.DelegationRequest, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DelegationRequest), args.Error(1)
}

func (m *MockDelegationRepository) GetPendingDelegationsForOwner(ownerID string) ([]models.DelegationRequest, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DelegationRequest), args.Error(1)
}

func (m *MockDelegationRepository) ApproveDelegation(delegationID, resolverID string, perm *models.Permission) error {
	args := m.Called(delegationID, resolverID, perm)
	return args.Error(0)
}

func (m *MockDelegationRepository) ResolveDelegation(delegationID, status, resolverID string) error {
	args := m.Called(delegationID, status, resolverID)
	return args.Error(0)
}

func (m *MockDelegationRepository) RevokeDelegation(delegationID, permissionID, resolverID string) error {
	args := m.Called(delegationID, permissionID, resolverID)
	return args.Error(0)
}

// MockAlertRepository is a mock implementation of AlertRepository interface
type MockAlertRepository struct {
	mock.Mock
}

var _ AlertRepository = (*MockAlertRepository)(nil)

func (m *MockAlertRepository) CreateAlert(a *models.Alert) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAlertRepository) GetAlert(alertID string) (*models.Alert, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

func (m *MockAlertRepository) GetAlertsByMember(memberID string) ([]models.Alert, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockAlertRepository) GetUpcomingAlerts(memberID string, horizon time.Time) ([]models.Alert, error) {
	args := m.Called(memberID, horizon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockAlertRepository) GetDueAlerts(now time.Time, limit int) ([]models.Alert, error) {
	args := m.Called(now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockAlertRepository) UpdateAlert(a *models.Alert) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAlertRepository) MarkAlertTriggered(alertID string, firedAt, nextTrigger time.Time, stillActive bool) error {
	args := m.Called(alertID, firedAt, nextTrigger, stillActive)
	return args.Error(0)
}

func (m *MockAlertRepository) DeleteAlert(alertID string) error {
	args := m.Called(alertID)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(member *models.Member) (*models.Session, error) {
	args := m.Called(member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteByMember(memberID string) {
	m.Called(memberID)
}

// ==================== TEST HELPERS ====================

// discardAuditRepo swallows audit entries so service tests don't have to set
// expectations on best-effort logging.
type discardAuditRepo struct{}

var _ AuditRepository = (*discardAuditRepo)(nil)

func (discardAuditRepo) AppendAuditEntry(e *models.AuditEntry) error {
	return nil
}

func (discardAuditRepo) GetAuditEntries(familyID, entityType string, limit, offset int) ([]models.AuditEntry, error) {
	return []models.AuditEntry{}, nil
}

func testAuditService() *AuditService {
	return NewAuditService(discardAuditRepo{})
}

func ownerSession() *models.Session {
	return &models.Session{
		ID:       "sess-owner",
		MemberID: "member-owner",
		FamilyID: "family1",
		Email:    "owner@example.com",
		Name:     "Owner",
		Role:     models.RoleOwner,
	}
}

func adultSession() *models.Session {
	return &models.Session{
		ID:       "sess-adult",
		MemberID: "member-adult",
		FamilyID: "family1",
		Email:    "adult@example.com",
		Name:     "Adult",
		Role:     models.RoleAdult,
	}
}

func strPtr(s string) *string {
	return &s
}
