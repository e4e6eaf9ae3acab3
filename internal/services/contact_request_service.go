package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
)

var (
	ErrSelfRequest          = errors.New("cannot request your own contact details")
	ErrTargetNotFound       = errors.New("target user does not exist")
	ErrDuplicatePending     = errors.New("a pending request already exists")
	ErrRequestNotFound      = errors.New("contact request not found")
	ErrRequestUpdateDenied  = errors.New("no permission to update this request")
	ErrRequestAlreadyClosed = errors.New("request has already been resolved")
)

// ContactRequestService handles the peer-to-peer approval workflow that
// gates contact-detail visibility.
type ContactRequestService struct {
	requestRepo repository.ContactRequestRepository
	userRepo    repository.UserRepository
}

// NewContactRequestService creates a new ContactRequestService.
func NewContactRequestService(requestRepo repository.ContactRequestRepository, userRepo repository.UserRepository) *ContactRequestService {
	return &ContactRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// List returns every request where the user is requester or target, newest
// first.
func (s *ContactRequestService) List(userID uint64) ([]models.ContactRequest, error) {
	requests, err := s.requestRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return requests, nil
}

// Create opens a PENDING request toward the target. The ordered pair may
// hold at most one PENDING request; the reverse direction is independent.
// The existence pre-check is backed by a partial unique index, so a racing
// duplicate insert still surfaces as ErrDuplicatePending.
func (s *ContactRequestService) Create(requesterID, targetID uint64) (*models.ContactRequest, error) {
	if targetID == requesterID {
		return nil, ErrSelfRequest
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to find target user: %w", err)
	}

	if _, err := s.requestRepo.FindPending(requesterID, targetID); err == nil {
		return nil, ErrDuplicatePending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending request: %w", err)
	}

	request := &models.ContactRequest{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      models.RequestPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePending
		}
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	created, err := s.requestRepo.FindByID(request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload contact request: %w", err)
	}
	return created, nil
}

// UpdateStatus resolves a request. Only the target or an admin may act, and
// a request that already left PENDING is locked.
func (s *ContactRequestService) UpdateStatus(actorID uint64, actorRole models.Role, requestID uint64, newStatus models.RequestStatus) (*models.ContactRequest, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find contact request: %w", err)
	}

	if actorRole != models.RoleAdmin && request.TargetID != actorID {
		return nil, ErrRequestUpdateDenied
	}

	if request.Status.Terminal() {
		return nil, ErrRequestAlreadyClosed
	}

	request.Status = newStatus
	if newStatus != models.RequestPending {
		now := time.Now()
		request.ResolvedAt = &now
	} else {
		request.ResolvedAt = nil
	}

	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update contact request: %w", err)
	}

	return request, nil
}
