package models

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// Valid reports whether the status belongs to the closed set.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// Terminal reports whether the status is final. A request that has been
// approved or rejected never changes again.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

type ContactRequest struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	RequesterID uint64        `gorm:"not null;index" json:"requesterId"`
	TargetID    uint64        `gorm:"not null;index" json:"targetId"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	ResolvedAt  *time.Time    `json:"resolvedAt"`

	// Relations
	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Target    User `gorm:"foreignKey:TargetID" json:"target,omitempty"`
}
