package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrEmptyContent         = errors.New("content is required")
)

// AnnouncementService handles the announcement feed.
type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// List returns every announcement, pinned first, then newest first.
func (s *AnnouncementService) List() ([]models.Announcement, error) {
	announcements, err := s.announcementRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

// Create publishes an announcement authored by the given user.
func (s *AnnouncementService) Create(authorID uint64, content string, pinned bool) (*models.Announcement, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	announcement := &models.Announcement{
		Content:  content,
		Pinned:   pinned,
		AuthorID: authorID,
	}
	if err := s.announcementRepo.Create(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	created, err := s.announcementRepo.FindByID(announcement.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload announcement: %w", err)
	}
	return created, nil
}

// AnnouncementPatch carries a partial update; nil fields retain their prior
// values.
type AnnouncementPatch struct {
	Content *string
	Pinned  *bool
}

// Update applies a partial patch to an announcement.
func (s *AnnouncementService) Update(id uint64, patch AnnouncementPatch) (*models.Announcement, error) {
	announcement, err := s.announcementRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to find announcement: %w", err)
	}

	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return nil, ErrEmptyContent
		}
		announcement.Content = *patch.Content
	}
	if patch.Pinned != nil {
		announcement.Pinned = *patch.Pinned
	}

	if err := s.announcementRepo.Update(announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	return announcement, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(id uint64) error {
	if err := s.announcementRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
