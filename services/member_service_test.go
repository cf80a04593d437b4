package services

import (
	"arka/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestMemberService_RegisterFamily(t *testing.T) {
	t.Run("Success - Family and owner created together", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMemberByEmail", "owner@example.com").Return(nil, nil)
		repo.On("CreateFamilyWithOwner", mock.AnythingOfType("*models.Family"), mock.AnythingOfType("*models.Member")).Return(nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		family, owner, err := service.RegisterFamily(&models.RegisterFamilyRequest{
			FamilyName: "  Martin  ",
			OwnerName:  "Claire",
			Email:      "  Owner@Example.com ",
			Password:   "s3cret-pass",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Martin", family.Name)
		assert.Equal(t, models.RoleOwner, owner.Role)
		assert.Equal(t, family.ID, owner.FamilyID)
		assert.Equal(t, "owner@example.com", owner.Email)
		assert.NotEqual(t, "s3cret-pass", owner.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("Error - Email already registered", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMemberByEmail", "owner@example.com").Return(&models.Member{ID: "existing"}, nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		_, _, err := service.RegisterFamily(&models.RegisterFamilyRequest{
			FamilyName: "Martin",
			OwnerName:  "Claire",
			Email:      "owner@example.com",
			Password:   "s3cret-pass",
		})

		assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
	})
}

func TestMemberService_Login(t *testing.T) {
	member := &models.Member{
		ID:           "member-owner",
		FamilyID:     "family1",
		Email:        "owner@example.com",
		PasswordHash: "",
		Role:         models.RoleOwner,
	}

	t.Run("Success - Correct credentials open a session", func(t *testing.T) {
		member.PasswordHash = hashFor(t, "s3cret-pass")

		repo := new(MockMemberRepository)
		repo.On("GetMemberByEmail", "owner@example.com").Return(member, nil)

		sessions := new(MockSessionStore)
		sessions.On("Create", member).Return(&models.Session{ID: "sess1", MemberID: "member-owner"}, nil)

		service := NewMemberService(repo, sessions, testAuditService())
		sess, err := service.Login("Owner@Example.com", "s3cret-pass")

		assert.NoError(t, err)
		assert.Equal(t, "sess1", sess.ID)
		sessions.AssertExpectations(t)
	})

	t.Run("Error - Wrong password", func(t *testing.T) {
		member.PasswordHash = hashFor(t, "s3cret-pass")

		repo := new(MockMemberRepository)
		repo.On("GetMemberByEmail", "owner@example.com").Return(member, nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		sess, err := service.Login("owner@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, sess)
	})

	t.Run("Error - Unknown email", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMemberByEmail", "nobody@example.com").Return(nil, nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		sess, err := service.Login("nobody@example.com", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, sess)
	})
}

func TestMemberService_AddMember(t *testing.T) {
	t.Run("Error - Only the owner adds members", func(t *testing.T) {
		service := NewMemberService(new(MockMemberRepository), new(MockSessionStore), testAuditService())
		_, err := service.AddMember(adultSession(), &models.AddMemberRequest{
			Name: "Léo", Email: "leo@example.com", Password: "p4ssword1", Role: models.RoleChild,
		})

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Success - Child member joins the family", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMemberByEmail", "leo@example.com").Return(nil, nil)
		repo.On("CreateMember", mock.MatchedBy(func(m *models.Member) bool {
			return m.FamilyID == "family1" && m.Role == models.RoleChild && m.Color == defaultMemberColor
		})).Return(nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		member, err := service.AddMember(ownerSession(), &models.AddMemberRequest{
			Name: "Léo", Email: "leo@example.com", Password: "p4ssword1", Role: models.RoleChild,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Léo", member.Name)
		repo.AssertExpectations(t)
	})
}

func TestMemberService_UpdateMember(t *testing.T) {
	owner := &models.Member{ID: "member-owner", FamilyID: "family1", Name: "Claire", Role: models.RoleOwner, Color: "#4a7aab"}
	adult := &models.Member{ID: "member-adult", FamilyID: "family1", Name: "Sam", Role: models.RoleAdult, Color: "#4a7aab"}

	t.Run("Error - Demoting the only owner", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-owner").Return(owner, nil)
		repo.On("CountFamilyOwners", "family1").Return(1, nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		_, err := service.UpdateMember(ownerSession(), "member-owner", &models.UpdateMemberRequest{
			Name: "Claire", Role: models.RoleAdult,
		})

		assert.ErrorIs(t, err, ErrCannotRemoveOwner)
	})

	t.Run("Success - Demoting an owner when another remains", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-owner").Return(owner, nil)
		repo.On("CountFamilyOwners", "family1").Return(2, nil)
		repo.On("UpdateMember", "member-owner", "Claire", models.RoleAdult, "#4a7aab").Return(nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		_, err := service.UpdateMember(ownerSession(), "member-owner", &models.UpdateMemberRequest{
			Name: "Claire", Role: models.RoleAdult,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Error - Member changing their own role", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-adult").Return(adult, nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		_, err := service.UpdateMember(adultSession(), "member-adult", &models.UpdateMemberRequest{
			Name: "Sam", Role: models.RoleOwner,
		})

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Success - Member renames themselves", func(t *testing.T) {
		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-adult").Return(adult, nil)
		repo.On("UpdateMember", "member-adult", "Samuel", models.RoleAdult, "#4a7aab").Return(nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		_, err := service.UpdateMember(adultSession(), "member-adult", &models.UpdateMemberRequest{
			Name: "Samuel", Role: models.RoleAdult,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestMemberService_RemoveMember(t *testing.T) {
	t.Run("Error - The only owner cannot be removed", func(t *testing.T) {
		owner := &models.Member{ID: "member-owner", FamilyID: "family1", Role: models.RoleOwner}

		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-owner").Return(owner, nil)
		repo.On("CountFamilyOwners", "family1").Return(1, nil)

		service := NewMemberService(repo, new(MockSessionStore), testAuditService())
		err := service.RemoveMember(ownerSession(), "member-owner")

		assert.ErrorIs(t, err, ErrCannotRemoveOwner)
	})

	t.Run("Success - An owner can be removed when another remains", func(t *testing.T) {
		coOwner := &models.Member{ID: "member-coowner", FamilyID: "family1", Name: "Max", Role: models.RoleOwner}

		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-coowner").Return(coOwner, nil)
		repo.On("CountFamilyOwners", "family1").Return(2, nil)
		repo.On("DeleteMember", "member-coowner").Return(nil)

		sessions := new(MockSessionStore)
		sessions.On("DeleteByMember", "member-coowner").Return()

		service := NewMemberService(repo, sessions, testAuditService())
		err := service.RemoveMember(ownerSession(), "member-coowner")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Success - Removal closes the member's sessions", func(t *testing.T) {
		child := &models.Member{ID: "member-child", FamilyID: "family1", Name: "Léo", Role: models.RoleChild}

		repo := new(MockMemberRepository)
		repo.On("GetMember", "member-child").Return(child, nil)
		repo.On("DeleteMember", "member-child").Return(nil)

		sessions := new(MockSessionStore)
		sessions.On("DeleteByMember", "member-child").Return()

		service := NewMemberService(repo, sessions, testAuditService())
		err := service.RemoveMember(ownerSession(), "member-child")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		sessions.AssertExpectations(t)
	})
}
