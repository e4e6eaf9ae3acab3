package repository

import (
	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
)

// GormMeetingRepository is a GORM implementation of MeetingRepository
type GormMeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &GormMeetingRepository{db: db}
}

func (r *GormMeetingRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("CreatedBy").
		Preload("Participants").
		Preload("Participants.User")
}

// ListAll returns every meeting, newest scheduled first
func (r *GormMeetingRepository) ListAll() ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.withRelations().
		Order("scheduled_at DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// ListForUser returns meetings the user created or participates in
func (r *GormMeetingRepository) ListForUser(userID uint64) ([]models.Meeting, error) {
	var meetings []models.Meeting
	participantSubQuery := r.db.Model(&models.MeetingParticipant{}).
		Select("1").
		Where("meeting_participants.meeting_id = meetings.id").
		Where("meeting_participants.user_id = ?", userID)

	err := r.withRelations().
		Where("meetings.created_by_id = ? OR EXISTS (?)", userID, participantSubQuery).
		Order("scheduled_at DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByID finds a meeting by ID with roster and creator loaded
func (r *GormMeetingRepository) FindByID(id uint64) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.withRelations().First(&meeting, id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Create creates a meeting along with its initial roster
func (r *GormMeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// Update persists changes to a meeting's own fields
func (r *GormMeetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Omit("Participants", "CreatedBy").Save(meeting).Error
}

// ReplaceParticipants swaps the entire roster in one transaction so a
// concurrent reader never observes an empty roster mid-update.
func (r *GormMeetingRepository) ReplaceParticipants(meetingID uint64, userIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).
			Delete(&models.MeetingParticipant{}).Error; err != nil {
			return err
		}

		if len(userIDs) == 0 {
			return nil
		}

		participants := make([]models.MeetingParticipant, len(userIDs))
		for i, userID := range userIDs {
			participants[i] = models.MeetingParticipant{
				MeetingID: meetingID,
				UserID:    userID,
				Status:    models.ParticipantInvited,
			}
		}
		return tx.Create(&participants).Error
	})
}
