package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
)

var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMeetingAccessDenied = errors.New("no access to this meeting")
	ErrMeetingEditDenied   = errors.New("no permission to edit this meeting")
	ErrEmptyTitle          = errors.New("title is required")
)

// MeetingService handles meeting CRUD and roster management.
type MeetingService struct {
	meetingRepo repository.MeetingRepository
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(meetingRepo repository.MeetingRepository) *MeetingService {
	return &MeetingService{meetingRepo: meetingRepo}
}

// List returns the meetings visible to the viewer: admins see everything,
// everyone else sees meetings they created or participate in.
func (s *MeetingService) List(viewerID uint64, viewerRole models.Role) ([]models.Meeting, error) {
	var (
		meetings []models.Meeting
		err      error
	)
	if viewerRole == models.RoleAdmin {
		meetings, err = s.meetingRepo.ListAll()
	} else {
		meetings, err = s.meetingRepo.ListForUser(viewerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// Get returns a meeting if the viewer is an admin, the creator, or on the
// roster.
func (s *MeetingService) Get(viewerID uint64, viewerRole models.Role, id uint64) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}

	if !canViewMeeting(meeting, viewerID, viewerRole) {
		return nil, ErrMeetingAccessDenied
	}

	return meeting, nil
}

func canViewMeeting(meeting *models.Meeting, viewerID uint64, viewerRole models.Role) bool {
	if viewerRole == models.RoleAdmin || meeting.CreatedByID == viewerID {
		return true
	}
	for _, p := range meeting.Participants {
		if p.UserID == viewerID {
			return true
		}
	}
	return false
}

// CreateMeetingInput represents a new meeting and its initial roster.
type CreateMeetingInput struct {
	Title          string
	Agenda         string
	Summary        string
	ScheduledAt    *time.Time
	ParticipantIDs []uint64
}

// Create creates a meeting with a roster link for each participant id.
func (s *MeetingService) Create(creatorID uint64, input CreateMeetingInput) (*models.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyTitle
	}

	meeting := &models.Meeting{
		Title:       input.Title,
		Agenda:      input.Agenda,
		Summary:     input.Summary,
		ScheduledAt: input.ScheduledAt,
		CreatedByID: creatorID,
	}
	for _, userID := range input.ParticipantIDs {
		meeting.Participants = append(meeting.Participants, models.MeetingParticipant{
			UserID: userID,
			Status: models.ParticipantInvited,
		})
	}

	if err := s.meetingRepo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	created, err := s.meetingRepo.FindByID(meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return created, nil
}

// MeetingPatch carries a partial update; nil fields retain their prior
// values. A non-nil ParticipantIDs replaces the entire roster.
type MeetingPatch struct {
	Title          *string
	Agenda         *string
	Summary        *string
	ScheduledAt    *time.Time
	ParticipantIDs *[]uint64
}

// Update applies a partial patch. The route admits PRO callers, but editing
// still requires being an admin or the original creator.
func (s *MeetingService) Update(actorID uint64, actorRole models.Role, id uint64, patch MeetingPatch) (*models.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}

	if actorRole != models.RoleAdmin && meeting.CreatedByID != actorID {
		return nil, ErrMeetingEditDenied
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, ErrEmptyTitle
		}
		meeting.Title = *patch.Title
	}
	if patch.Agenda != nil {
		meeting.Agenda = *patch.Agenda
	}
	if patch.Summary != nil {
		meeting.Summary = *patch.Summary
	}
	if patch.ScheduledAt != nil {
		meeting.ScheduledAt = patch.ScheduledAt
	}

	if err := s.meetingRepo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	if patch.ParticipantIDs != nil {
		if err := s.meetingRepo.ReplaceParticipants(meeting.ID, *patch.ParticipantIDs); err != nil {
			return nil, fmt.Errorf("failed to replace participants: %w", err)
		}
	}

	updated, err := s.meetingRepo.FindByID(meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return updated, nil
}
