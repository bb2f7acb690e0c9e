package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-tutor-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrTopicNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrAchievementNotFound),
		errors.Is(err, domain.ErrChallengeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrUsernameConflict),
		errors.Is(err, domain.ErrEmailConflict),
		errors.Is(err, domain.ErrCourseNameConflict),
		errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrAchievementConflict),
		errors.Is(err, domain.ErrSessionAlreadyEnded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidCourseName),
		errors.Is(err, domain.ErrInvalidTopicName),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrNotEnrolled),
		errors.Is(err, domain.ErrInvalidQuestion),
		errors.Is(err, domain.ErrInvalidSubject):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Auth errors
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrSessionNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, domain.ErrTutorNotAvailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrTutorBadSuggestions):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
