package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/red7x7/membership-api/internal/errors"
)

// bindJSON binds the request body into obj, responding with a 400 carrying
// field-level details on failure. Returns false when the request was rejected.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := make([]string, len(validationErrs))
			for i, fe := range validationErrs {
				details[i] = fmt.Sprintf("field %s failed validation: %s", fe.Field(), fe.Tag())
			}
			apierrors.BadRequestWithDetails(c, "Invalid request body", details)
			return false
		}
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// parseIDParam parses the :id path parameter, responding with a 400 on
// malformed input. The second return is false when the request was rejected.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
