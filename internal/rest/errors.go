package rest

import (
	"net/http"

	"postcomments/api"
	"postcomments/blog/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors to HTTP responses. Validation errors are
// the caller's fault, not-found errors name a missing resource; anything
// else is logged and reported without leaking internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "InvalidRequest",
			Message: err.Error(),
		})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Error:   "NotFound",
			Message: err.Error(),
		})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unexpected error handling request")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error:   "InternalServerError",
			Message: "an internal error occurred",
		})
	}
}

// parseID parses a path or body identifier, responding with a validation
// error on failure.
func parseID(c *gin.Context, field, value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		respondError(c, domain.NewValidationError(field, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
