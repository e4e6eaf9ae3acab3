package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/red7x7/membership-api/internal/dto"
	apierrors "github.com/red7x7/membership-api/internal/errors"
	"github.com/red7x7/membership-api/internal/middleware"
	"github.com/red7x7/membership-api/internal/services"
)

// AnnouncementHandler coordinates the announcement feed handlers.
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// List returns the feed, pinned first, then newest first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnouncementDTOs(announcements))
}

// Create publishes a new announcement.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateAnnouncementRequest struct {
		Content string `json:"content" binding:"required"`
		Pinned  bool   `json:"pinned"`
	}

	var req CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	announcement, err := h.announcementService.Create(claims.UserID, req.Content, req.Pinned)
	if err != nil {
		respondAnnouncementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnnouncementDTO(*announcement))
}

// Update applies a partial patch; omitted fields keep their prior values.
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateAnnouncementRequest struct {
		Content *string `json:"content"`
		Pinned  *bool   `json:"pinned"`
	}

	var req UpdateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	announcement, err := h.announcementService.Update(id, services.AnnouncementPatch{
		Content: req.Content,
		Pinned:  req.Pinned,
	})
	if err != nil {
		respondAnnouncementError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnnouncementDTO(*announcement))
}

// Delete removes an announcement.
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.announcementService.Delete(id); err != nil {
		respondAnnouncementError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAnnouncementNotFound):
		apierrors.NotFound(c, "Announcement not found")
	case errors.Is(err, services.ErrEmptyContent):
		apierrors.BadRequest(c, "Content is required")
	default:
		apierrors.InternalError(c, "")
	}
}
