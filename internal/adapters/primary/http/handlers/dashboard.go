package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
)

func (h *Handler) Dashboard(c *gin.Context) {
	overview, err := h.dashboardSvc.Overview(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		log.WithError(err).Error("dashboard failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(overview))
}
