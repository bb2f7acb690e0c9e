package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-tutor-service/internal/adapters/primary/http/handlers"
	"ai-tutor-service/internal/adapters/primary/http/middleware"
	"ai-tutor-service/internal/adapters/secondary/groq"
	"ai-tutor-service/internal/adapters/secondary/postgres"
	"ai-tutor-service/internal/config"
	output "ai-tutor-service/internal/core/ports/output"
	"ai-tutor-service/internal/core/services"
	"ai-tutor-service/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	userRepo := postgres.NewUserRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	topicRepo := postgres.NewTopicRepository(pool)
	enrollmentRepo := postgres.NewEnrollmentRepository(pool)
	sessionRepo := postgres.NewStudySessionRepository(pool)
	achievementRepo := postgres.NewAchievementRepository(pool)
	challengeRepo := postgres.NewChallengeRepository(pool)

	// Tutor Client (Optional - based on config)
	var tutorClient output.TutorClient
	if cfg.Tutor.Enabled {
		tutorClient = groq.NewTutorClient(&cfg.Tutor)
		log.Info("tutor client initialized")
	} else {
		log.Info("tutor integration disabled")
	}

	// Token manager
	tokens := token.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, nil)

	// Core Services (Application Layer)
	gamifySvc := services.NewGamificationService(achievementRepo, challengeRepo, userRepo, sessionRepo)
	authSvc := services.NewAuthService(userRepo, gamifySvc, tokens)
	courseSvc := services.NewCourseService(courseRepo, topicRepo)
	topicSvc := services.NewTopicService(topicRepo, courseRepo)
	enrollmentSvc := services.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)
	sessionSvc := services.NewSessionService(sessionRepo, topicRepo, userRepo, gamifySvc)
	tutorSvc := services.NewTutorService(tutorClient)
	dashboardSvc := services.NewDashboardService(userRepo, courseRepo, enrollmentRepo, challengeRepo, achievementRepo, sessionRepo, cfg.Study.DailyGoalMinutes)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(authSvc, courseSvc, topicSvc, enrollmentSvc, sessionSvc, gamifySvc, tutorSvc, dashboardSvc, tokens)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
