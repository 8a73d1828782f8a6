package repositories

import (
	"github.com/kolbenev/twitter-clone/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	CreateMedia(media *models.Media) error
	GetMediaByTweetIDs(tweetIDs []uint) ([]models.Media, error)
}

// PostgresMediaRepository implements MediaRepository for PostgreSQL
type PostgresMediaRepository struct {
	db *gorm.DB
}

// NewPostgresMediaRepository creates a new PostgresMediaRepository
func NewPostgresMediaRepository(db *gorm.DB) *PostgresMediaRepository {
	return &PostgresMediaRepository{db: db}
}

// CreateMedia inserts a new, still unattached media row
func (r *PostgresMediaRepository) CreateMedia(media *models.Media) error {
	return r.db.Create(media).Error
}

// GetMediaByTweetIDs retrieves the media rows attached to the given tweets
func (r *PostgresMediaRepository) GetMediaByTweetIDs(tweetIDs []uint) ([]models.Media, error) {
	var media []models.Media
	if len(tweetIDs) == 0 {
		return media, nil
	}
	if err := r.db.Where("tweet_id IN ?", tweetIDs).Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}
