package repository

import "github.com/red7x7/membership-api/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns all users ordered by name ascending
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	// List returns all announcements with authors, pinned first then newest first
	List() ([]models.Announcement, error)

	// Create creates a new announcement
	Create(announcement *models.Announcement) error

	// FindByID finds an announcement by ID
	FindByID(id uint64) (*models.Announcement, error)

	// Update persists changes to an announcement
	Update(announcement *models.Announcement) error

	// Delete removes an announcement. Returns gorm.ErrRecordNotFound when absent.
	Delete(id uint64) error
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// ListAll returns every meeting, newest scheduled first
	ListAll() ([]models.Meeting, error)

	// ListForUser returns meetings the user created or participates in
	ListForUser(userID uint64) ([]models.Meeting, error)

	// FindByID finds a meeting by ID with roster and creator loaded
	FindByID(id uint64) (*models.Meeting, error)

	// Create creates a meeting along with its initial roster
	Create(meeting *models.Meeting) error

	// Update persists changes to a meeting's own fields
	Update(meeting *models.Meeting) error

	// ReplaceParticipants swaps the entire roster atomically
	ReplaceParticipants(meetingID uint64, userIDs []uint64) error
}

// ContactRequestRepository defines the interface for contact request data access
type ContactRequestRepository interface {
	// Create creates a new request
	Create(request *models.ContactRequest) error

	// FindByID finds a request by ID
	FindByID(id uint64) (*models.ContactRequest, error)

	// FindPending finds the PENDING request for an ordered (requester, target) pair
	FindPending(requesterID, targetID uint64) (*models.ContactRequest, error)

	// ListForUser returns requests where the user is requester or target, newest first
	ListForUser(userID uint64) ([]models.ContactRequest, error)

	// Update persists changes to a request
	Update(request *models.ContactRequest) error

	// ApprovedBetween reports whether an APPROVED request links the two users
	// in either direction
	ApprovedBetween(userA, userB uint64) (bool, error)

	// ApprovedPeers returns the ids of every user linked to the given user by
	// an APPROVED request in either direction
	ApprovedPeers(userID uint64) ([]uint64, error)
}
