package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
)

func (h *Handler) StartSession(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}

	session, err := h.sessionSvc.Start(c.Request.Context(), middleware.CurrentUserID(c), topicID)
	if err != nil {
		log.WithError(err).Error("start session failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) EndSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, points, err := h.sessionSvc.End(c.Request.Context(), middleware.CurrentUserID(c), sessionID)
	if err != nil {
		log.WithError(err).Error("end session failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EndSessionResponse{
		Session:      dto.ToSessionResponse(session),
		PointsEarned: points,
	})
}

func (h *Handler) StudyTimeToday(c *gin.Context) {
	studied, err := h.sessionSvc.StudyTimeToday(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		log.WithError(err).Error("study time today failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"study_minutes_today": int(studied.Minutes())})
}

func (h *Handler) ListSessions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	sessions, err := h.sessionSvc.ListByUser(c.Request.Context(), middleware.CurrentUserID(c), limit)
	if err != nil {
		log.WithError(err).Error("list sessions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, dto.ToSessionResponse(session))
	}

	c.JSON(http.StatusOK, dto.ListSessionsResponse{Items: items, Total: len(items)})
}
