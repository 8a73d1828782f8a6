package repositories

import (
	"errors"

	"github.com/kolbenev/twitter-clone/internal/models"
	"gorm.io/gorm"
)

// ErrLikeNotFound is returned when an unlike targets a missing like
var ErrLikeNotFound = errors.New("like not found")

// LikeWithUser is a like row joined with the liking user's display name
type LikeWithUser struct {
	TweetID uint
	UserID  uint
	Name    string
}

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(userID, tweetID uint) error
	HasUserLikedTweet(userID, tweetID uint) (bool, error)
	GetLikesByTweetIDs(tweetIDs []uint) ([]LikeWithUser, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike deletes the like by (user, tweet)
func (r *PostgresLikeRepository) DeleteLike(userID, tweetID uint) error {
	res := r.db.Where("user_id = ? AND tweet_id = ?", userID, tweetID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// HasUserLikedTweet checks if a user has liked a specific tweet
func (r *PostgresLikeRepository) HasUserLikedTweet(userID, tweetID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND tweet_id = ?", userID, tweetID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesByTweetIDs retrieves the likes for the given tweets together with
// each liker's display name, in storage order.
func (r *PostgresLikeRepository) GetLikesByTweetIDs(tweetIDs []uint) ([]LikeWithUser, error) {
	var likes []LikeWithUser
	if len(tweetIDs) == 0 {
		return likes, nil
	}
	err := r.db.Model(&models.Like{}).
		Select("likes.tweet_id, likes.user_id, users.name").
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.tweet_id IN ?", tweetIDs).
		Order("likes.id").
		Scan(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
