package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
	"ai-tutor-service/internal/core/services"
)

func (h *Handler) ListCourses(c *gin.Context) {
	var filter output.CourseFilter
	filter.EducationLevel = domain.EducationLevel(c.Query("education_level"))
	filter.Subject = c.Query("subject")
	filter.Difficulty = domain.Difficulty(c.Query("difficulty"))

	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = n
	}
	if offset := c.Query("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filter.Offset = n
	}

	courses, total, err := h.courseSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list courses failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.ToCourseResponse(course))
	}

	c.JSON(http.StatusOK, dto.ListCoursesResponse{Items: items, Total: total})
}

func (h *Handler) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	course, err := h.courseSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), services.CreateCourseRequest{
		Name:           req.Name,
		Description:    req.Description,
		Subject:        req.Subject,
		EducationLevel: domain.EducationLevel(req.EducationLevel),
		Difficulty:     domain.Difficulty(req.Difficulty),
	})
	if err != nil {
		log.WithError(err).Error("create course failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

func (h *Handler) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := services.UpdateCourseRequest{
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
	}
	if req.EducationLevel != nil {
		level := domain.EducationLevel(*req.EducationLevel)
		update.EducationLevel = &level
	}
	if req.Difficulty != nil {
		difficulty := domain.Difficulty(*req.Difficulty)
		update.Difficulty = &difficulty
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, update)
	if err != nil {
		log.WithError(err).Error("update course failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete course failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
