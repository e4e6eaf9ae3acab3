package models

type ParticipantStatus string

const (
	ParticipantInvited   ParticipantStatus = "INVITED"
	ParticipantConfirmed ParticipantStatus = "CONFIRMED"
	ParticipantDeclined  ParticipantStatus = "DECLINED"
)

type MeetingParticipant struct {
	ID        uint64            `gorm:"primarykey" json:"id"`
	MeetingID uint64            `gorm:"not null;index" json:"meetingId"`
	UserID    uint64            `gorm:"not null;index" json:"userId"`
	Status    ParticipantStatus `gorm:"type:varchar(20);not null;default:'INVITED'" json:"status"`

	// Relations
	Meeting Meeting `gorm:"foreignKey:MeetingID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
