package services

import (
	"arka/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDelegationServiceForTest(repo *MockDelegationRepository, resolver *MockTargetResolver, members *MockMemberRepository) *DelegationService {
	permissions := &PermissionService{resolver: resolver, members: members, audit: testAuditService()}
	return &DelegationService{repo: repo, permissions: permissions, members: members, audit: testAuditService()}
}

func TestDelegationService_Create(t *testing.T) {
	owner := &models.Member{ID: "member-owner", FamilyID: "family1", Name: "Owner"}
	space := &models.Space{ID: "space1", FamilyID: "family1"}

	tests := []struct {
		name          string
		req           *models.CreateDelegationRequest
		mockSetup     func(*MockDelegationRepository, *MockTargetResolver, *MockMemberRepository)
		expectedError error
	}{
		{
			name: "Success - Pending request created",
			req: &models.CreateDelegationRequest{
				OwnerID:    "member-owner",
				TargetType: models.TargetSpace,
				TargetID:   "space1",
				Level:      models.LevelContribute,
				Reason:     "  need to add schedules  ",
			},
			mockSetup: func(repo *MockDelegationRepository, resolver *MockTargetResolver, members *MockMemberRepository) {
				members.On("GetMember", "member-owner").Return(owner, nil)
				resolver.On("GetSpace", "space1").Return(space, nil)
				repo.On("CreateDelegation", mock.AnythingOfType("*models.DelegationRequest")).Return(nil)
			},
		},
		{
			name: "Error - Requesting from oneself",
			req: &models.CreateDelegationRequest{
				OwnerID:    "member-adult",
				TargetType: models.TargetSpace,
				TargetID:   "space1",
				Level:      models.LevelView,
			},
			expectedError: ErrSelfGrant,
		},
		{
			name: "Error - Owner outside the family",
			req: &models.CreateDelegationRequest{
				OwnerID:    "stranger",
				TargetType: models.TargetSpace,
				TargetID:   "space1",
				Level:      models.LevelView,
			},
			mockSetup: func(repo *MockDelegationRepository, resolver *MockTargetResolver, members *MockMemberRepository) {
				members.On("GetMember", "stranger").Return(&models.Member{ID: "stranger", FamilyID: "family2"}, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name: "Error - Target does not exist",
			req: &models.CreateDelegationRequest{
				OwnerID:    "member-owner",
				TargetType: models.TargetSpace,
				TargetID:   "ghost",
				Level:      models.LevelView,
			},
			mockSetup: func(repo *MockDelegationRepository, resolver *MockTargetResolver, members *MockMemberRepository) {
				members.On("GetMember", "member-owner").Return(owner, nil)
				resolver.On("GetSpace", "ghost").Return(nil, nil)
			},
			expectedError: ErrSpaceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDelegationRepository)
			resolver := new(MockTargetResolver)
			members := new(MockMemberRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(repo, resolver, members)
			}

			service := newDelegationServiceForTest(repo, resolver, members)
			delegation, err := service.Create(adultSession(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, delegation)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, delegation)
				assert.Equal(t, models.DelegationPending, delegation.Status)
				assert.Equal(t, "member-adult", delegation.RequesterID)
				assert.Equal(t, "need to add schedules", delegation.Reason)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestDelegationService_Approve(t *testing.T) {
	pending := func() *models.DelegationRequest {
		return &models.DelegationRequest{
			ID:          "del1",
			RequesterID: "member-adult",
			OwnerID:     "member-owner",
			TargetType:  models.TargetSpace,
			TargetID:    "space1",
			Level:       models.LevelContribute,
			Status:      models.DelegationPending,
		}
	}

	t.Run("Success - Permission carries the request's terms", func(t *testing.T) {
		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(pending(), nil)
		repo.On("ApproveDelegation", "del1", "member-owner", mock.MatchedBy(func(p *models.Permission) bool {
			return p.OwnerID == "member-owner" &&
				p.BeneficiaryID == "member-adult" &&
				p.TargetType == models.TargetSpace &&
				p.TargetID == "space1" &&
				p.Level == models.LevelContribute &&
				p.Status == models.PermissionActive
		})).Return(nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Approve(ownerSession(), "del1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Error - Already resolved", func(t *testing.T) {
		resolved := pending()
		resolved.Status = models.DelegationApproved

		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(resolved, nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Approve(ownerSession(), "del1")

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Error - Caller is not the addressee", func(t *testing.T) {
		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(pending(), nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Approve(adultSession(), "del1")

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Error - Request missing", func(t *testing.T) {
		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "ghost").Return(nil, nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Approve(ownerSession(), "ghost")

		assert.ErrorIs(t, err, ErrDelegationNotFound)
	})
}

func TestDelegationService_Reject(t *testing.T) {
	t.Run("Success - Pending request rejected", func(t *testing.T) {
		pending := &models.DelegationRequest{
			ID: "del1", OwnerID: "member-owner", Status: models.DelegationPending,
		}
		rejected := &models.DelegationRequest{
			ID: "del1", OwnerID: "member-owner", Status: models.DelegationRejected,
		}

		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(pending, nil).Once()
		repo.On("ResolveDelegation", "del1", models.DelegationRejected, "member-owner").Return(nil)
		repo.On("GetDelegation", "del1").Return(rejected, nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		result, err := service.Reject(ownerSession(), "del1")

		assert.NoError(t, err)
		assert.Equal(t, models.DelegationRejected, result.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Error - Rejecting an approved request", func(t *testing.T) {
		approved := &models.DelegationRequest{
			ID: "del1", OwnerID: "member-owner", Status: models.DelegationApproved,
		}

		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(approved, nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Reject(ownerSession(), "del1")

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestDelegationService_Revoke(t *testing.T) {
	t.Run("Success - Linked permission revoked with the request", func(t *testing.T) {
		approved := &models.DelegationRequest{
			ID: "del1", OwnerID: "member-owner", Status: models.DelegationApproved, PermissionID: strPtr("perm1"),
		}

		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(approved, nil)
		repo.On("RevokeDelegation", "del1", "perm1", "member-owner").Return(nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Revoke(ownerSession(), "del1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Error - Revoking a pending request", func(t *testing.T) {
		pending := &models.DelegationRequest{
			ID: "del1", OwnerID: "member-owner", Status: models.DelegationPending,
		}

		repo := new(MockDelegationRepository)
		repo.On("GetDelegation", "del1").Return(pending, nil)

		service := newDelegationServiceForTest(repo, new(MockTargetResolver), new(MockMemberRepository))
		_, err := service.Revoke(ownerSession(), "del1")

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
