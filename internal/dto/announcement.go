package dto

import (
	"time"

	"github.com/red7x7/membership-api/internal/models"
)

// AnnouncementDTO represents an announcement in API responses.
type AnnouncementDTO struct {
	ID        uint64       `json:"id"`
	Content   string       `json:"content"`
	Pinned    bool         `json:"pinned"`
	AuthorID  uint64       `json:"authorId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Author    *UserSummary `json:"author,omitempty"`
}

// ToAnnouncementDTO converts an Announcement model to its response shape.
func ToAnnouncementDTO(a models.Announcement) AnnouncementDTO {
	dto := AnnouncementDTO{
		ID:        a.ID,
		Content:   a.Content,
		Pinned:    a.Pinned,
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Author.ID != 0 {
		author := ToUserSummary(a.Author)
		dto.Author = &author
	}
	return dto
}

// ToAnnouncementDTOs converts a slice preserving order.
func ToAnnouncementDTOs(announcements []models.Announcement) []AnnouncementDTO {
	dtos := make([]AnnouncementDTO, len(announcements))
	for i, a := range announcements {
		dtos[i] = ToAnnouncementDTO(a)
	}
	return dtos
}
