package repositories

import (
	"testing"

	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateAndCheck(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	following, err = repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The inverse direction is a distinct edge
	following, err = repo.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowRepository_DeleteFollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, repo.DeleteFollow(alice.ID, bob.ID))

	err := repo.DeleteFollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrFollowNotFound)
}

func TestFollowRepository_FollowerAndFollowingViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	// bob and carol follow alice; alice follows carol
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: carol.ID}))

	followers, err := repo.GetFollowers(alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "bob", followers[0].Name)
	assert.Equal(t, "carol", followers[1].Name)

	following, err := repo.GetFollowing(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "carol", following[0].Name)
}
