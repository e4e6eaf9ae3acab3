package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/red7x7/membership-api/internal/dto"
	apierrors "github.com/red7x7/membership-api/internal/errors"
	"github.com/red7x7/membership-api/internal/middleware"
	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/services"
)

// ContactRequestHandler coordinates the contact-request workflow handlers.
type ContactRequestHandler struct {
	requestService *services.ContactRequestService
}

// NewContactRequestHandler creates a new ContactRequestHandler.
func NewContactRequestHandler(requestService *services.ContactRequestService) *ContactRequestHandler {
	return &ContactRequestHandler{requestService: requestService}
}

// List returns every request the user is a party to, newest first.
func (h *ContactRequestHandler) List(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	requests, err := h.requestService.List(claims.UserID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToContactRequestDTOs(requests))
}

// Create opens a PENDING request toward another member.
func (h *ContactRequestHandler) Create(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateContactRequest struct {
		TargetID uint64 `json:"targetId" binding:"required"`
	}

	var req CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.requestService.Create(claims.UserID, req.TargetID)
	if err != nil {
		respondContactRequestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactRequestDTO(*request))
}

// UpdateStatus resolves a request; only the target or an admin may act.
func (h *ContactRequestHandler) UpdateStatus(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status models.RequestStatus `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
	}

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.requestService.UpdateStatus(claims.UserID, claims.Role, id, req.Status)
	if err != nil {
		respondContactRequestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactRequestDTO(*request))
}

func respondContactRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfRequest):
		apierrors.BadRequest(c, "Cannot request your own contact details")
	case errors.Is(err, services.ErrTargetNotFound):
		apierrors.BadRequest(c, "Invalid target user")
	case errors.Is(err, services.ErrDuplicatePending):
		apierrors.Conflict(c, "A pending request already exists")
	case errors.Is(err, services.ErrRequestNotFound):
		apierrors.NotFound(c, "Contact request not found")
	case errors.Is(err, services.ErrRequestUpdateDenied):
		apierrors.Forbidden(c, "No permission to update this request")
	case errors.Is(err, services.ErrRequestAlreadyClosed):
		apierrors.Conflict(c, "Request has already been resolved")
	default:
		apierrors.InternalError(c, "")
	}
}
