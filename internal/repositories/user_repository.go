package repositories

import (
	"github.com/kolbenev/twitter-clone/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByAPIKey(apiKey string) (*models.User, error)
	GetUsersByIDs(ids []uint) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by its surrogate key
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByAPIKey retrieves the user whose stored apikey equals the credential
func (r *PostgresUserRepository) GetUserByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("apikey = ?", apiKey).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsersByIDs retrieves all users whose id is in ids
func (r *PostgresUserRepository) GetUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
