package repositories

import (
	"github.com/anonto42/microblog/backend/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	CreateMedia(media *models.Media) error
	GetMediaByID(id uint) (*models.Media, error)
	GetOwnedMedia(ownerID uint, ids []uint) ([]models.Media, error)
}

// GormMediaRepository implements MediaRepository with gorm
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a new GormMediaRepository
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// CreateMedia inserts a new media row
func (r *GormMediaRepository) CreateMedia(media *models.Media) error {
	return r.db.Create(media).Error
}

// GetMediaByID retrieves a media row by ID
func (r *GormMediaRepository) GetMediaByID(id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// GetOwnedMedia returns the subset of ids that exist and belong to ownerID.
// Unknown ids and ids owned by someone else are dropped.
func (r *GormMediaRepository) GetOwnedMedia(ownerID uint, ids []uint) ([]models.Media, error) {
	var media []models.Media
	if len(ids) == 0 {
		return media, nil
	}
	err := r.db.Where("id IN ? AND owner_id = ?", ids, ownerID).Order("id").Find(&media).Error
	return media, err
}
