package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
)

func (h *Handler) Enroll(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	enrollment, err := h.enrollmentSvc.Enroll(c.Request.Context(), middleware.CurrentUserID(c), courseID)
	if err != nil {
		log.WithError(err).Error("enroll failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) CompleteCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	enrollment, err := h.enrollmentSvc.Complete(c.Request.Context(), middleware.CurrentUserID(c), courseID)
	if err != nil {
		log.WithError(err).Error("complete course failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentSvc.ListByUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		log.WithError(err).Error("list enrollments failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, dto.ToEnrollmentResponse(enrollment))
	}

	c.JSON(http.StatusOK, dto.ListEnrollmentsResponse{Items: items, Total: len(items)})
}
