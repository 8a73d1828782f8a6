package repositories

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/kolbenev/twitter-clone/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Tweet{},
		&models.Like{},
		&models.Media{},
	))
	return db
}

// createUser inserts a user with a unique api key
func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:   name,
		APIKey: fmt.Sprintf("key-%s", name),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTweet inserts a tweet for the given author
func createTweet(t *testing.T, db *gorm.DB, authorID uint, content string) *models.Tweet {
	t.Helper()

	tweet := &models.Tweet{AuthorID: authorID, Content: content}
	require.NoError(t, db.Create(tweet).Error)
	return tweet
}
