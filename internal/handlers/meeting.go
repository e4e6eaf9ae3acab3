package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/red7x7/membership-api/internal/constants"
	"github.com/red7x7/membership-api/internal/dto"
	apierrors "github.com/red7x7/membership-api/internal/errors"
	"github.com/red7x7/membership-api/internal/middleware"
	"github.com/red7x7/membership-api/internal/services"
)

// MeetingHandler coordinates meeting CRUD and AI summarization handlers.
type MeetingHandler struct {
	meetingService *services.MeetingService
	aiService      *services.AIService
}

// NewMeetingHandler creates a new MeetingHandler. aiService may be nil when
// no API key is configured.
func NewMeetingHandler(meetingService *services.MeetingService, aiService *services.AIService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
		aiService:      aiService,
	}
}

// List returns the meetings visible to the viewer, newest scheduled first.
func (h *MeetingHandler) List(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	meetings, err := h.meetingService.List(claims.UserID, claims.Role)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTOs(meetings))
}

// Get returns a single meeting with its roster.
func (h *MeetingHandler) Get(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	meeting, err := h.meetingService.Get(claims.UserID, claims.Role, id)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// Create schedules a new meeting with its initial roster.
func (h *MeetingHandler) Create(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateMeetingRequest struct {
		Title          string     `json:"title" binding:"required"`
		Agenda         string     `json:"agenda"`
		Summary        string     `json:"summary"`
		ScheduledAt    *time.Time `json:"scheduledAt"`
		ParticipantIDs []uint64   `json:"participantIds"`
	}

	var req CreateMeetingRequest
	if !bindJSON(c, &req) {
		return
	}

	meeting, err := h.meetingService.Create(claims.UserID, services.CreateMeetingInput{
		Title:          req.Title,
		Agenda:         req.Agenda,
		Summary:        req.Summary,
		ScheduledAt:    req.ScheduledAt,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeetingDTO(*meeting))
}

// Update applies a partial patch; providing participantIds replaces the
// entire roster.
func (h *MeetingHandler) Update(c *gin.Context) {
	claims, exists := middleware.GetClaims(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateMeetingRequest struct {
		Title          *string    `json:"title"`
		Agenda         *string    `json:"agenda"`
		Summary        *string    `json:"summary"`
		ScheduledAt    *time.Time `json:"scheduledAt"`
		ParticipantIDs *[]uint64  `json:"participantIds"`
	}

	var req UpdateMeetingRequest
	if !bindJSON(c, &req) {
		return
	}

	meeting, err := h.meetingService.Update(claims.UserID, claims.Role, id, services.MeetingPatch{
		Title:          req.Title,
		Agenda:         req.Agenda,
		Summary:        req.Summary,
		ScheduledAt:    req.ScheduledAt,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingDTO(*meeting))
}

// Summarize sends meeting notes to the AI collaborator and returns the
// advisory result; it never creates or mutates a meeting.
func (h *MeetingHandler) Summarize(c *gin.Context) {
	type SummarizeRequest struct {
		Notes string `json:"notes" binding:"required"`
	}

	var req SummarizeRequest
	if !bindJSON(c, &req) {
		return
	}

	if h.aiService == nil {
		apierrors.InternalError(c, "AI service is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.AITimeout)
	defer cancel()

	summary, err := h.aiService.SummarizeNotes(ctx, req.Notes)
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func respondMeetingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMeetingNotFound):
		apierrors.NotFound(c, "Meeting not found")
	case errors.Is(err, services.ErrMeetingAccessDenied):
		apierrors.Forbidden(c, "No access to this meeting")
	case errors.Is(err, services.ErrMeetingEditDenied):
		apierrors.Forbidden(c, "No permission to edit this meeting")
	case errors.Is(err, services.ErrEmptyTitle):
		apierrors.BadRequest(c, "Title is required")
	default:
		apierrors.InternalError(c, "")
	}
}

func respondAIError(c *gin.Context, err error) {
	var unparseable *services.UnparseableResponseError
	switch {
	case errors.Is(err, services.ErrAINotConfigured):
		apierrors.InternalError(c, "AI service is not configured")
	case errors.Is(err, services.ErrAITimeout):
		apierrors.GatewayTimeout(c, "AI service timed out, please try again")
	case errors.As(err, &unparseable):
		apierrors.BadGateway(c, "Could not parse AI response", unparseable.Raw)
	default:
		apierrors.BadGateway(c, "AI service request failed", nil)
	}
}
