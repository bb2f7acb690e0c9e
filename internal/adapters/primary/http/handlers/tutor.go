package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
)

func (h *Handler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	answer, err := h.tutorSvc.Ask(c.Request.Context(), user, req.Question)
	if err != nil {
		log.WithError(err).Error("tutor ask failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AskResponse{Answer: answer})
}

func (h *Handler) SuggestTopics(c *gin.Context) {
	var req dto.SuggestTopicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	suggestions, err := h.tutorSvc.SuggestTopics(c.Request.Context(), user, req.Subject)
	if err != nil {
		log.WithError(err).Error("tutor suggest topics failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSuggestTopicsResponse(suggestions))
}
