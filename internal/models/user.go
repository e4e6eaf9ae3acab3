package models

import "time"

type Role string

const (
	RoleMember Role = "MEMBER"
	RolePro    Role = "PRO"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RolePro, RoleAdmin:
		return true
	}
	return false
}

type Membership string

const (
	MembershipSocio7x7 Membership = "SOCIO7X7"
	MembershipPro      Membership = "PRO"
)

// Valid reports whether the membership tier belongs to the closed set.
func (m Membership) Valid() bool {
	switch m {
	case MembershipSocio7x7, MembershipPro:
		return true
	}
	return false
}

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	Membership   Membership `gorm:"type:varchar(20);not null;default:'SOCIO7X7'" json:"membership"`
	Company      string     `gorm:"type:varchar(255)" json:"company"`
	Position     string     `gorm:"type:varchar(255)" json:"position"`
	Phone        string     `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Relations
	Announcements    []Announcement       `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedMeetings  []Meeting            `gorm:"foreignKey:CreatedByID" json:"-"`
	Participations   []MeetingParticipant `gorm:"foreignKey:UserID" json:"-"`
	SentRequests     []ContactRequest     `gorm:"foreignKey:RequesterID" json:"-"`
	ReceivedRequests []ContactRequest     `gorm:"foreignKey:TargetID" json:"-"`
}
