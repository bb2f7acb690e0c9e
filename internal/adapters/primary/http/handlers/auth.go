package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/adapters/primary/http/dto"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
	"ai-tutor-service/internal/core/domain"
	"ai-tutor-service/internal/core/services"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, signed, err := h.authSvc.Register(c.Request.Context(), services.RegisterRequest{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		EducationLevel: domain.EducationLevel(req.EducationLevel),
		GradeOrYear:    req.GradeOrYear,
		Major:          req.Major,
	})
	if err != nil {
		log.WithError(err).Error("register failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: signed,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, signed, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: signed,
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.authSvc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
