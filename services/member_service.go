package services

import (
	"arka/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultMemberColor = "#4a7aab"

// MemberService handles families, members, and authentication
type MemberService struct {
	repo     MemberRepository
	sessions SessionStore
	audit    *AuditService
}

// NewMemberService creates a new member service
func NewMemberService(repo MemberRepository, sessions SessionStore, audit *AuditService) *MemberService {
	return &MemberService{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// RegisterFamily creates a family and its owner member in one transaction.
func (ms *MemberService) RegisterFamily(req *models.RegisterFamilyRequest) (*models.Family, *models.Member, error) {
	email := normalizeEmail(req.Email)

	existing, err := ms.repo.GetMemberByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	family := &models.Family{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.FamilyName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &models.Member{
		ID:           uuid.New().String(),
		FamilyID:     family.ID,
		Name:         strings.TrimSpace(req.OwnerName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		Color:        defaultMemberColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := ms.repo.CreateFamilyWithOwner(family, owner); err != nil {
		return nil, nil, err
	}

	ms.audit.Record(family.ID, owner.ID, "family.register", "family", family.ID, family.Name)
	return family, owner, nil
}

// AddMember adds a member to the caller's family. Only owners may add members.
func (ms *MemberService) AddMember(actor *models.Session, req *models.AddMemberRequest) (*models.Member, error) {
	if actor.Role != models.RoleOwner {
		return nil, ErrForbidden
	}

	email := normalizeEmail(req.Email)
	existing, err := ms.repo.GetMemberByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = defaultMemberColor
	}

	now := time.Now()
	member := &models.Member{
		ID:           uuid.New().String(),
		FamilyID:     actor.FamilyID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Color:        color,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := ms.repo.CreateMember(member); err != nil {
		return nil, err
	}

	ms.audit.Record(actor.FamilyID, actor.MemberID, "member.add", "member", member.ID, member.Name)
	return member, nil
}

// Login verifies credentials and opens a session.
func (ms *MemberService) Login(email, password string) (*models.Session, error) {
	member, err := ms.repo.GetMemberByEmail(normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return ms.sessions.Create(member)
}

// Logout closes the session.
func (ms *MemberService) Logout(sessionID string) error {
	return ms.sessions.Delete(sessionID)
}

// ListMembers returns all members of a family.
func (ms *MemberService) ListMembers(familyID string) ([]models.Member, error) {
	return ms.repo.GetMembersByFamily(familyID)
}

// GetMember returns a member of the caller's family.
func (ms *MemberService) GetMember(actor *models.Session, memberID string) (*models.Member, error) {
	member, err := ms.repo.GetMember(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.FamilyID != actor.FamilyID {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// UpdateMember updates profile fields. Owners may update anyone in the
// family; other members only themselves, and they cannot change their role.
func (ms *MemberService) UpdateMember(actor *models.Session, memberID string, req *models.UpdateMemberRequest) (*models.Member, error) {
	member, err := ms.GetMember(actor, memberID)
	if err != nil {
		return nil, err
	}

	if actor.Role != models.RoleOwner {
		if actor.MemberID != memberID || req.Role != member.Role {
			return nil, ErrForbidden
		}
	}
	// A family keeps at least one owner at all times
	if member.Role == models.RoleOwner && req.Role != models.RoleOwner {
		owners, err := ms.repo.CountFamilyOwners(actor.FamilyID)
		if err != nil {
			return nil, err
		}
		if owners <= 1 {
			return nil, ErrCannotRemoveOwner
		}
	}

	color := req.Color
	if color == "" {
		color = member.Color
	}

	if err := ms.repo.UpdateMember(memberID, strings.TrimSpace(req.Name), req.Role, color); err != nil {
		return nil, err
	}

	ms.audit.Record(actor.FamilyID, actor.MemberID, "member.update", "member", memberID, req.Name)
	return ms.repo.GetMember(memberID)
}

// RemoveMember deletes a member; cascading foreign keys clean up access
// records, permissions, delegations, and alerts. The last owner is protected.
func (ms *MemberService) RemoveMember(actor *models.Session, memberID string) error {
	if actor.Role != models.RoleOwner {
		return ErrForbidden
	}

	member, err := ms.GetMember(actor, memberID)
	if err != nil {
		return err
	}
	if member.Role == models.RoleOwner {
		owners, err := ms.repo.CountFamilyOwners(actor.FamilyID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return ErrCannotRemoveOwner
		}
	}

	if err := ms.repo.DeleteMember(memberID); err != nil {
		return err
	}

	ms.sessions.DeleteByMember(memberID)
	ms.audit.Record(actor.FamilyID, actor.MemberID, "member.remove", "member", memberID, member.Name)
	return nil
}

// RenameFamily renames the caller's family. Owner only.
func (ms *MemberService) RenameFamily(actor *models.Session, name string) error {
	if actor.Role != models.RoleOwner {
		return ErrForbidden
	}

	if err := ms.repo.UpdateFamilyName(actor.FamilyID, strings.TrimSpace(name)); err != nil {
		return err
	}

	ms.audit.Record(actor.FamilyID, actor.MemberID, "family.rename", "family", actor.FamilyID, name)
	return nil
}

// GetFamily returns the caller's family record.
func (ms *MemberService) GetFamily(familyID string) (*models.Family, error) {
	family, err := ms.repo.GetFamily(familyID)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, ErrFamilyNotFound
	}
	return family, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
