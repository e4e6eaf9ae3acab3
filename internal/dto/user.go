package dto

import "github.com/red7x7/membership-api/internal/models"

// UserSummary is the embedded author/requester shape.
type UserSummary struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactSummary is the embedded target shape; it carries the phone number
// the approval workflow gates.
type ContactSummary struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProfileDTO is the public user profile returned by auth and user endpoints.
type ProfileDTO struct {
	ID         uint64            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       models.Role       `json:"role"`
	Membership models.Membership `json:"membership"`
	Company    string            `json:"company"`
	Position   string            `json:"position"`
	Phone      string            `json:"phone"`
}

// DirectoryEntryDTO is one row of the member directory. Phone is blank
// unless the viewer passed the contact-visibility gate for this member.
type DirectoryEntryDTO struct {
	ID         uint64            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Company    string            `json:"company"`
	Position   string            `json:"position"`
	Phone      string            `json:"phone"`
	Role       models.Role       `json:"role"`
	Membership models.Membership `json:"membership"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  ProfileDTO `json:"user"`
}

// MeResponse is the authenticated user's profile plus their contact requests.
type MeResponse struct {
	ProfileDTO
	ContactRequests []ContactRequestDTO `json:"contactRequests"`
}

// CreatedUserResponse carries the one-time temporary password of an
// admin-issued account. The plaintext exists nowhere else.
type CreatedUserResponse struct {
	ProfileDTO
	TemporaryPassword string `json:"temporaryPassword"`
}

func ToUserSummary(user models.User) UserSummary {
	return UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}

func ToContactSummary(user models.User) ContactSummary {
	return ContactSummary{ID: user.ID, Name: user.Name, Email: user.Email, Phone: user.Phone}
}

func ToProfileDTO(user models.User) ProfileDTO {
	return ProfileDTO{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Membership: user.Membership,
		Company:    user.Company,
		Position:   user.Position,
		Phone:      user.Phone,
	}
}
