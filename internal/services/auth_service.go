package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
	"github.com/red7x7/membership-api/internal/token"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration, login, and identity lookups.
type AuthService struct {
	userRepo    repository.UserRepository
	requestRepo repository.ContactRequestRepository
	tokens      *token.Manager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, requestRepo repository.ContactRequestRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		tokens:      tokens,
	}
}

// RegisterInput represents the information required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Company  string
	Position string
	Phone    string
}

// Register creates a new MEMBER/SOCIO7X7 account and returns it with a
// signed session token.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleMember,
		Membership:   models.MembershipSocio7x7,
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

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, signed, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user with a signed session
// token. Unknown email and wrong password yield the same error so account
// existence does not leak.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, signed, nil
}

// Me returns the user's profile along with every contact request they are a
// party to.
func (s *AuthService) Me(userID uint64) (*models.User, []models.ContactRequest, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	requests, err := s.requestRepo.ListForUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list contact requests: %w", err)
	}

	return user, requests, nil
}

// RequestPasswordReset accepts any email and reveals nothing about account
// existence. Actual mail delivery is stubbed.
func (s *AuthService) RequestPasswordReset(email string) error {
	_, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to find user: %w", err)
	}
	return nil
}
