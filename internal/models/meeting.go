package models

import "time"

type Meeting struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Agenda      string     `gorm:"type:text" json:"agenda"`
	Summary     string     `gorm:"type:text" json:"summary"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	CreatedByID uint64     `gorm:"not null" json:"createdById"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	CreatedBy    User                 `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Participants []MeetingParticipant `gorm:"foreignKey:MeetingID" json:"participants,omitempty"`
}
