package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
)

func (h *Handler) ListAchievements(c *gin.Context) {
	achievements, err := h.gamifySvc.ListAchievements(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list achievements failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.AchievementResponse, 0, len(achievements))
	for _, achievement := range achievements {
		items = append(items, dto.ToAchievementResponse(achievement))
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) ListMyAchievements(c *gin.Context) {
	earned, err := h.gamifySvc.ListUserAchievements(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		log.WithError(err).Error("list user achievements failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.EarnedAchievementResponse, 0, len(earned))
	for _, ua := range earned {
		items = append(items, dto.ToEarnedAchievementResponse(ua))
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) ListActiveChallenges(c *gin.Context) {
	challenges, err := h.gamifySvc.ActiveChallenges(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list challenges failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ChallengeResponse, 0, len(challenges))
	for _, challenge := range challenges {
		items = append(items, dto.ToChallengeResponse(challenge))
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}
