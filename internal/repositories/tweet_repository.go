package repositories

import (
	"github.com/anonto42/microblog/backend/internal/models"
	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweet(tweet *models.Tweet) error
	GetTweetByID(id uint) (*models.Tweet, error)
	DeleteTweet(tweet *models.Tweet) error
	GetTweetsByAuthors(authorIDs []uint) ([]models.Tweet, error)
}

// GormTweetRepository implements TweetRepository with gorm
type GormTweetRepository struct {
	db *gorm.DB
}

// NewGormTweetRepository creates a new GormTweetRepository
func NewGormTweetRepository(db *gorm.DB) *GormTweetRepository {
	return &GormTweetRepository{db: db}
}

// CreateTweet inserts the tweet and a tweet_media row for every entry in
// tweet.Media. The media rows themselves must already exist.
func (r *GormTweetRepository) CreateTweet(tweet *models.Tweet) error {
	return r.db.Omit("Media.*").Create(tweet).Error
}

// GetTweetByID retrieves a tweet by ID. Returns gorm.ErrRecordNotFound when absent.
func (r *GormTweetRepository) GetTweetByID(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// DeleteTweet removes the tweet together with its likes and media links.
// Media rows are kept.
func (r *GormTweetRepository) DeleteTweet(tweet *models.Tweet) error {
	if err := r.db.Where("tweet_id = ?", tweet.ID).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := r.db.Model(tweet).Association("Media").Clear(); err != nil {
		return err
	}
	return r.db.Delete(tweet).Error
}

// GetTweetsByAuthors returns every tweet written by one of authorIDs, newest
// first, with author, media and likers loaded.
func (r *GormTweetRepository) GetTweetsByAuthors(authorIDs []uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if len(authorIDs) == 0 {
		return tweets, nil
	}
	err := r.db.
		Preload("Author").
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("media.id") }).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("likes.id") }).
		Preload("Likes.User").
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tweets).Error
	return tweets, err
}
