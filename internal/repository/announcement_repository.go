package repository

import (
	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
)

// GormAnnouncementRepository is a GORM implementation of AnnouncementRepository
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// List returns all announcements with authors, pinned first then newest
// first. The trailing id sort keeps equal-timestamp rows in insertion order.
func (r *GormAnnouncementRepository) List() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.
		Preload("Author").
		Order("pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// Create creates a new announcement
func (r *GormAnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// FindByID finds an announcement by ID with its author loaded
func (r *GormAnnouncementRepository) FindByID(id uint64) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.Preload("Author").First(&announcement, id).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Update persists changes to an announcement
func (r *GormAnnouncementRepository) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete removes an announcement. Returns gorm.ErrRecordNotFound when absent.
func (r *GormAnnouncementRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
