package session

import (
	"arka/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMember(id string) *models.Member {
	return &models.Member{
		ID:       id,
		FamilyID: "family1",
		Name:     "Claire",
		Email:    id + "@example.com",
		Role:     models.RoleOwner,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()

	sess, err := store.Create(testMember("member1"))
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "member1", sess.MemberID)
	assert.Equal(t, "family1", sess.FamilyID)
	assert.Equal(t, models.RoleOwner, sess.Role)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore()

	got, err := store.Get("missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ExpiredSessionIsInvisible(t *testing.T) {
	store := NewStore()

	sess, err := store.Create(testMember("member1"))
	require.NoError(t, err)
	sess.ExpiresAt = time.Now().Add(-time.Minute)

	got, err := store.Get(sess.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	store.CleanupExpired()
	got, err = store.Get(sess.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DeleteByMember(t *testing.T) {
	store := NewStore()

	first, err := store.Create(testMember("member1"))
	require.NoError(t, err)
	second, err := store.Create(testMember("member1"))
	require.NoError(t, err)
	other, err := store.Create(testMember("member2"))
	require.NoError(t, err)

	store.DeleteByMember("member1")

	got, _ := store.Get(first.ID)
	assert.Nil(t, got)
	got, _ = store.Get(second.ID)
	assert.Nil(t, got)

	got, err = store.Get(other.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
