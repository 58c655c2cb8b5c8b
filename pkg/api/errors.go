package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

// respondError translates service errors into HTTP status codes.
func respondError(c *gin.Context, err error) {
	var rateErr *blocker.RateLimitError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.IsValidationError(err), errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &rateErr):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
