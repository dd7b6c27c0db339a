package repositories

import (
	"errors"

	"github.com/anonto42/microblog/backend/internal/models"
	"gorm.io/gorm"
)

// ErrLikeNotFound is returned when deleting a like that does not exist
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(tweetID, userID uint) error
	HasUserLikedTweet(tweetID, userID uint) (bool, error)
	GetLikesByTweetID(tweetID uint) ([]models.Like, error)
}

// GormLikeRepository implements LikeRepository with gorm
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// CreateLike inserts a new like
func (r *GormLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike deletes the like of userID on tweetID
func (r *GormLikeRepository) DeleteLike(tweetID, userID uint) error {
	res := r.db.Where("tweet_id = ? AND user_id = ?", tweetID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// HasUserLikedTweet checks if a user has liked a specific tweet
func (r *GormLikeRepository) HasUserLikedTweet(tweetID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("tweet_id = ? AND user_id = ?", tweetID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesByTweetID retrieves all likes for a tweet
func (r *GormLikeRepository) GetLikesByTweetID(tweetID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("tweet_id = ?", tweetID).Order("id").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
