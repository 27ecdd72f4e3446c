package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

var validationErrors = []error{
	domain.ErrWorkoutNameEmpty,
	domain.ErrWorkoutNameTooLong,
	domain.ErrWorkoutNotesTooLong,
	domain.ErrWorkoutInvalidUserID,
	domain.ErrInvalidWorkoutType,
	domain.ErrInvalidDuration,
	domain.ErrNegativeCalories,
	domain.ErrFoodNameEmpty,
	domain.ErrFoodInvalidUserID,
	domain.ErrNegativeNutrient,
	domain.ErrNutrientTooLarge,
	domain.ErrInvalidDayKey,
	domain.ErrInvalidEmail,
	domain.ErrPasswordTooShort,
	domain.ErrInvalidBarcode,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleError writes the status code for a service error.
func handleError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrWorkoutNotFound), errors.Is(err, domain.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, domain.ErrLookupFailed):
		log.Printf("[LOOKUP] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "product lookup failed"})
	case errors.Is(err, domain.ErrAggregationFailed):
		log.Printf("[STATS] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute weekly statistics"})
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
