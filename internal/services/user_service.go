package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
	"github.com/red7x7/membership-api/internal/utils"
)

// UserService handles the directory, admin-issued accounts, and profile
// management.
type UserService struct {
	userRepo    repository.UserRepository
	requestRepo repository.ContactRequestRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, requestRepo repository.ContactRequestRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

// Directory returns every user ordered by name ascending, together with the
// set of user ids whose contact details the viewer may see.
func (s *UserService) Directory(viewerID uint64, viewerRole models.Role) ([]models.User, map[uint64]bool, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	visible := make(map[uint64]bool, len(users))
	if viewerRole == models.RoleAdmin {
		for _, u := range users {
			visible[u.ID] = true
		}
		return users, visible, nil
	}

	visible[viewerID] = true
	peers, err := s.requestRepo.ApprovedPeers(viewerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve approved peers: %w", err)
	}
	for _, id := range peers {
		visible[id] = true
	}

	return users, visible, nil
}

// CanViewContactDetails reports whether the viewer may see the member's
// private contact details: admins see everyone, everyone sees themselves,
// and an APPROVED contact request in either direction unlocks the pair.
func (s *UserService) CanViewContactDetails(viewerID uint64, viewerRole models.Role, memberID uint64) (bool, error) {
	if viewerRole == models.RoleAdmin || viewerID == memberID {
		return true, nil
	}
	return s.requestRepo.ApprovedBetween(viewerID, memberID)
}

// CreateUserInput represents an admin-issued account.
type CreateUserInput struct {
	Name       string
	Email      string
	Role       models.Role
	Membership models.Membership
	Company    string
	Position   string
	Phone      string
}

// CreateUser creates an account with a generated temporary password. The
// plaintext is returned exactly once and stored only as a hash.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	temporaryPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	membership := input.Membership
	if membership == "" {
		membership = models.MembershipSocio7x7
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Membership:   membership,
		Company:      input.Company,
		Position:     input.Position,
		Phone:        input.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", ErrFailedToCreateUser
	}

	return user, temporaryPassword, nil
}

// UpdateProfileInput carries the self-service profile fields.
type UpdateProfileInput struct {
	Name     string
	Company  string
	Position string
	Phone    string
}

// UpdateProfile updates the user's own profile fields.
func (s *UserService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Company = input.Company
	user.Position = input.Position
	user.Phone = input.Phone

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// UpdateRole sets a user's role and membership tier.
func (s *UserService) UpdateRole(userID uint64, role models.Role, membership models.Membership) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Role = role
	user.Membership = membership

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return user, nil
}
