package dto

import (
	"time"

	"github.com/red7x7/membership-api/internal/models"
)

// ParticipantUserDTO is the user shape embedded in a meeting roster.
type ParticipantUserDTO struct {
	ID         uint64            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       models.Role       `json:"role"`
	Membership models.Membership `json:"membership"`
}

// MeetingParticipantDTO represents one roster entry.
type MeetingParticipantDTO struct {
	ID     uint64                   `json:"id"`
	Status models.ParticipantStatus `json:"status"`
	User   ParticipantUserDTO       `json:"user"`
}

// MeetingDTO represents a meeting in API responses.
type MeetingDTO struct {
	ID           uint64                  `json:"id"`
	Title        string                  `json:"title"`
	Agenda       string                  `json:"agenda"`
	Summary      string                  `json:"summary"`
	ScheduledAt  *time.Time              `json:"scheduledAt"`
	CreatedByID  uint64                  `json:"createdById"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
	CreatedBy    *UserSummary            `json:"createdBy,omitempty"`
	Participants []MeetingParticipantDTO `json:"participants"`
}

// ToMeetingDTO converts a Meeting model (with preloaded relations) to its
// response shape.
func ToMeetingDTO(m models.Meeting) MeetingDTO {
	dto := MeetingDTO{
		ID:           m.ID,
		Title:        m.Title,
		Agenda:       m.Agenda,
		Summary:      m.Summary,
		ScheduledAt:  m.ScheduledAt,
		CreatedByID:  m.CreatedByID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Participants: make([]MeetingParticipantDTO, len(m.Participants)),
	}
	if m.CreatedBy.ID != 0 {
		creator := ToUserSummary(m.CreatedBy)
		dto.CreatedBy = &creator
	}
	for i, p := range m.Participants {
		dto.Participants[i] = MeetingParticipantDTO{
			ID:     p.ID,
			Status: p.Status,
			User: ParticipantUserDTO{
				ID:         p.User.ID,
				Name:       p.User.Name,
				Email:      p.User.Email,
				Role:       p.User.Role,
				Membership: p.User.Membership,
			},
		}
	}
	return dto
}

// ToMeetingDTOs converts a slice preserving order.
func ToMeetingDTOs(meetings []models.Meeting) []MeetingDTO {
	dtos := make([]MeetingDTO, len(meetings))
	for i, m := range meetings {
		dtos[i] = ToMeetingDTO(m)
	}
	return dtos
}

// AISummaryDTO is the advisory summarization result. It pre-fills form
// fields on the client and never mutates a meeting by itself.
type AISummaryDTO struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"actionItems"`
	Participants []string `json:"participants"`
}
