package repositories

import (
	"github.com/kolbenev/twitter-clone/internal/models"
	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweetWithMedia(tweet *models.Tweet, mediaIDs []uint) error
	GetTweetByID(id uint) (*models.Tweet, error)
	GetAllTweets() ([]models.Tweet, error)
	DeleteTweetCascade(id uint) error
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

// CreateTweetWithMedia inserts the tweet and claims the given media rows for
// it in one transaction. Media ids that resolve to no row are skipped.
func (r *PostgresTweetRepository) CreateTweetWithMedia(tweet *models.Tweet, mediaIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tweet).Error; err != nil {
			return err
		}
		if len(mediaIDs) == 0 {
			return nil
		}
		return tx.Model(&models.Media{}).Where("id IN ?", mediaIDs).Update("tweet_id", tweet.ID).Error
	})
}

// GetTweetByID retrieves a tweet by its id
func (r *PostgresTweetRepository) GetTweetByID(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// GetAllTweets retrieves every tweet in storage order. Callers snapshot the
// feed as-is, so no ordering clause is applied.
func (r *PostgresTweetRepository) GetAllTweets() ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// DeleteTweetCascade deletes the tweet together with its likes and media rows
// in one transaction.
func (r *PostgresTweetRepository) DeleteTweetCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tweet{}, id).Error
	})
}
