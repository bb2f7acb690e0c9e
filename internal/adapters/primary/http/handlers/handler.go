package handlers

import (
	"github.com/gin-gonic/gin"

	"ai-tutor-service/internal/adapters/primary/http/middleware"
	"ai-tutor-service/internal/core/domain"
	"ai-tutor-service/internal/core/services"
	"ai-tutor-service/internal/token"
)

type Handler struct {
	authSvc       *services.AuthService
	courseSvc     *services.CourseService
	topicSvc      *services.TopicService
	enrollmentSvc *services.EnrollmentService
	sessionSvc    *services.SessionService
	gamifySvc     *services.GamificationService
	tutorSvc      *services.TutorService
	dashboardSvc  *services.DashboardService
	tokens        *token.Manager
}

func New(
	authSvc *services.AuthService,
	courseSvc *services.CourseService,
	topicSvc *services.TopicService,
	enrollmentSvc *services.EnrollmentService,
	sessionSvc *services.SessionService,
	gamifySvc *services.GamificationService,
	tutorSvc *services.TutorService,
	dashboardSvc *services.DashboardService,
	tokens *token.Manager,
) *Handler {
	return &Handler{
		authSvc:       authSvc,
		courseSvc:     courseSvc,
		topicSvc:      topicSvc,
		enrollmentSvc: enrollmentSvc,
		sessionSvc:    sessionSvc,
		gamifySvc:     gamifySvc,
		tutorSvc:      tutorSvc,
		dashboardSvc:  dashboardSvc,
		tokens:        tokens,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Public
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	// Everything else requires a valid token
	authed := r.Group("", middleware.Auth(h.tokens))
	educator := middleware.RequireRole(domain.RoleEducator)

	authed.GET("/auth/me", h.Me)

	// Courses
	authed.GET("/courses", h.ListCourses)
	authed.GET("/courses/:id", h.GetCourse)
	authed.POST("/courses", educator, h.CreateCourse)
	authed.PATCH("/courses/:id", educator, h.UpdateCourse)
	authed.DELETE("/courses/:id", educator, h.DeleteCourse)

	// Topics (nested under course)
	authed.GET("/courses/:id/topics", h.ListTopics)
	authed.POST("/courses/:id/topics", educator, h.CreateTopic)

	// Topics (direct access)
	authed.GET("/topics/:id", h.GetTopic)
	authed.PATCH("/topics/:id", educator, h.UpdateTopic)
	authed.DELETE("/topics/:id", educator, h.DeleteTopic)

	// Enrollments
	authed.POST("/courses/:id/enroll", h.Enroll)
	authed.POST("/courses/:id/complete", h.CompleteCourse)
	authed.GET("/enrollments", h.ListEnrollments)

	// Study sessions
	authed.POST("/topics/:id/sessions", h.StartSession)
	authed.POST("/sessions/:id/end", h.EndSession)
	authed.GET("/sessions", h.ListSessions)
	authed.GET("/sessions/today", h.StudyTimeToday)

	// Gamification
	authed.GET("/achievements", h.ListAchievements)
	authed.GET("/me/achievements", h.ListMyAchievements)
	authed.GET("/challenges", h.ListActiveChallenges)

	// Tutor
	authed.POST("/tutor/ask", h.Ask)
	authed.POST("/tutor/suggest-topics", h.SuggestTopics)

	// Dashboard
	authed.GET("/dashboard", h.Dashboard)
}
