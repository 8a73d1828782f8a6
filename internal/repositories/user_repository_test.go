package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_GetUserByAPIKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	alice := createUser(t, db, "alice")

	got, err := repo.GetUserByAPIKey(alice.APIKey)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, alice.APIKey, got.APIKey)

	_, err = repo.GetUserByAPIKey("no-such-key")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_GetUserByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	bob := createUser(t, db, "bob")

	got, err := repo.GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)

	_, err = repo.GetUserByID(bob.ID + 100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_GetUsersByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createUser(t, db, "carol")

	users, err := repo.GetUsersByIDs([]uint{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.GetUsersByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}
