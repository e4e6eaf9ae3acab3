package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the uniform non-2xx response body.
type APIError struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError.
func New(message string) *APIError {
	return &APIError{Status: "error", Message: message}
}

// NewWithDetails creates an APIError carrying diagnostic details.
func NewWithDetails(message string, details interface{}) *APIError {
	return &APIError{Status: "error", Message: message, Details: details}
}

// RespondWithError sends an error response.
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, New(message))
}

// BadRequestWithDetails sends a 400 response with field-level details.
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, NewWithDetails(message, details))
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, New(message))
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, New(message))
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, New(message))
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, New(message))
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, New(message))
}

// BadGateway sends a 502 response, used for malformed upstream payloads.
func BadGateway(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadGateway, NewWithDetails(message, details))
}

// GatewayTimeout sends a 504 response, used when the upstream call times out.
func GatewayTimeout(c *gin.Context, message string) {
	RespondWithError(c, http.StatusGatewayTimeout, New(message))
}
