package dto

import (
	"time"

	"github.com/red7x7/membership-api/internal/models"
)

// ContactRequestDTO represents a contact request in API responses. The
// target embed carries the phone number unlocked by approval.
type ContactRequestDTO struct {
	ID          uint64               `json:"id"`
	RequesterID uint64               `json:"requesterId"`
	TargetID    uint64               `json:"targetId"`
	Status      models.RequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	ResolvedAt  *time.Time           `json:"resolvedAt"`
	Requester   *UserSummary         `json:"requester,omitempty"`
	Target      *ContactSummary      `json:"target,omitempty"`
}

// ToContactRequestDTO converts a ContactRequest model to its response shape.
func ToContactRequestDTO(r models.ContactRequest) ContactRequestDTO {
	dto := ContactRequestDTO{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		TargetID:    r.TargetID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		ResolvedAt:  r.ResolvedAt,
	}
	if r.Requester.ID != 0 {
		requester := ToUserSummary(r.Requester)
		dto.Requester = &requester
	}
	if r.Target.ID != 0 {
		target := ToContactSummary(r.Target)
		dto.Target = &target
	}
	return dto
}

// ToContactRequestDTOs converts a slice preserving order.
func ToContactRequestDTOs(requests []models.ContactRequest) []ContactRequestDTO {
	dtos := make([]ContactRequestDTO, len(requests))
	for i, r := range requests {
		dtos[i] = ToContactRequestDTO(r)
	}
	return dtos
}
