package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/red7x7/membership-api/internal/dto"
	apierrors "github.com/red7x7/membership-api/internal/errors"
	"github.com/red7x7/membership-api/internal/middleware"
	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/services"
)

// UserHandler coordinates directory and account-management handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Directory lists all members sorted by name. Phone numbers are blanked
// unless the viewer passed the contact-visibility gate for that member.
func (h *UserHandler) Directory(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	users, visible, err := h.userService.Directory(claims.UserID, claims.Role)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	entries := make([]dto.DirectoryEntryDTO, len(users))
	for i, u := range users {
		entry := dto.DirectoryEntryDTO{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Company:    u.Company,
			Position:   u.Position,
			Role:       u.Role,
			Membership: u.Membership,
		}
		if visible[u.ID] {
			entry.Phone = u.Phone
		}
		entries[i] = entry
	}

	c.JSON(http.StatusOK, entries)
}

// CreateUser creates an admin-issued account with a one-time temporary
// password in the response.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name       string            `json:"name" binding:"required"`
		Email      string            `json:"email" binding:"required,email"`
		Role       models.Role       `json:"role" binding:"omitempty,oneof=MEMBER PRO ADMIN"`
		Membership models.Membership `json:"membership" binding:"omitempty,oneof=SOCIO7X7 PRO"`
		Company    string            `json:"company"`
		Position   string            `json:"position"`
		Phone      string            `json:"phone"`
	}

	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, temporaryPassword, err := h.userService.CreateUser(services.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Membership: req.Membership,
		Company:    req.Company,
		Position:   req.Position,
		Phone:      req.Phone,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedUserResponse{
		ProfileDTO:        dto.ToProfileDTO(*user),
		TemporaryPassword: temporaryPassword,
	})
}

// UpdateProfile updates the authenticated user's own profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		Name     string `json:"name" binding:"required"`
		Company  string `json:"company"`
		Position string `json:"position"`
		Phone    string `json:"phone"`
	}

	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(claims.UserID, services.UpdateProfileInput{
		Name:     req.Name,
		Company:  req.Company,
		Position: req.Position,
		Phone:    req.Phone,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}

// UpdateRole sets a user's role and membership tier.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateRoleRequest struct {
		Role       models.Role       `json:"role" binding:"required,oneof=MEMBER PRO ADMIN"`
		Membership models.Membership `json:"membership" binding:"required,oneof=SOCIO7X7 PRO"`
	}

	var req UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateRole(id, req.Role, req.Membership)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}
