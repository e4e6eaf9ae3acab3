package repository

import (
	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
)

// GormContactRequestRepository is a GORM implementation of ContactRequestRepository
type GormContactRequestRepository struct {
	db *gorm.DB
}

// NewContactRequestRepository creates a new ContactRequestRepository
func NewContactRequestRepository(db *gorm.DB) ContactRequestRepository {
	return &GormContactRequestRepository{db: db}
}

// Create creates a new request
func (r *GormContactRequestRepository) Create(request *models.ContactRequest) error {
	return r.db.Create(request).Error
}

// FindByID finds a request by ID with both parties loaded
func (r *GormContactRequestRepository) FindByID(id uint64) (*models.ContactRequest, error) {
	var request models.ContactRequest
	err := r.db.
		Preload("Requester").
		Preload("Target").
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindPending finds the PENDING request for an ordered (requester, target)
// pair. The reverse direction is a distinct pair.
func (r *GormContactRequestRepository) FindPending(requesterID, targetID uint64) (*models.ContactRequest, error) {
	var request models.ContactRequest
	err := r.db.
		Where("requester_id = ? AND target_id = ? AND status = ?",
			requesterID, targetID, models.RequestPending).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListForUser returns requests where the user is requester or target, newest first
func (r *GormContactRequestRepository) ListForUser(userID uint64) ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	err := r.db.
		Preload("Requester").
		Preload("Target").
		Where("requester_id = ? OR target_id = ?", userID, userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Update persists changes to a request
func (r *GormContactRequestRepository) Update(request *models.ContactRequest) error {
	return r.db.Save(request).Error
}

// ApprovedBetween reports whether an APPROVED request links the two users in
// either direction
func (r *GormContactRequestRepository) ApprovedBetween(userA, userB uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ContactRequest{}).
		Where("status = ?", models.RequestApproved).
		Where("(requester_id = ? AND target_id = ?) OR (requester_id = ? AND target_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ApprovedPeers returns the ids of every user linked to the given user by an
// APPROVED request in either direction
func (r *GormContactRequestRepository) ApprovedPeers(userID uint64) ([]uint64, error) {
	var requests []models.ContactRequest
	err := r.db.
		Where("status = ?", models.RequestApproved).
		Where("requester_id = ? OR target_id = ?", userID, userID).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	peers := make([]uint64, 0, len(requests))
	for _, req := range requests {
		if req.RequesterID == userID {
			peers = append(peers, req.TargetID)
		} else {
			peers = append(peers, req.RequesterID)
		}
	}
	return peers, nil
}
