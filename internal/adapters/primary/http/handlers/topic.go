package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/core/services"
)

func (h *Handler) ListTopics(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	topics, err := h.topicSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		items = append(items, dto.ToTopicResponse(topic))
	}

	c.JSON(http.StatusOK, dto.ListTopicsResponse{Items: items, Total: len(items)})
}

func (h *Handler) GetTopic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}

	topic, err := h.topicSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopicResponse(topic))
}

func (h *Handler) CreateTopic(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.topicSvc.Create(c.Request.Context(), services.CreateTopicRequest{
		CourseID:    courseID,
		Name:        req.Name,
		Description: req.Description,
		VideoLinks:  req.VideoLinks,
	})
	if err != nil {
		log.WithError(err).Error("create topic failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTopicResponse(topic))
}

func (h *Handler) UpdateTopic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.topicSvc.Update(c.Request.Context(), id, services.UpdateTopicRequest{
		Name:        req.Name,
		Description: req.Description,
		VideoLinks:  req.VideoLinks,
	})
	if err != nil {
		log.WithError(err).Error("update topic failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTopicResponse(topic))
}

func (h *Handler) DeleteTopic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}

	if err := h.topicSvc.Delete(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("delete topic failed")
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
