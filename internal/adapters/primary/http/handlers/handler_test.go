package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"ai-tutor-service/internal/core/domain"
	"ai-tutor-service/internal/core/services"
	"ai-tutor-service/internal/testutil"
	"ai-tutor-service/internal/token"
)

type testMocks struct {
	userRepo        *testutil.MockUserRepo
	courseRepo      *testutil.MockCourseRepo
	topicRepo       *testutil.MockTopicRepo
	enrollmentRepo  *testutil.MockEnrollmentRepo
	sessionRepo     *testutil.MockStudySessionRepo
	achievementRepo *testutil.MockAchievementRepo
	challengeRepo   *testutil.MockChallengeRepo
	tutorClient     *testutil.MockTutorClient
	tokens          *token.Manager
}

func newTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	m := &testMocks{
		userRepo:        new(testutil.MockUserRepo),
		courseRepo:      new(testutil.MockCourseRepo),
		topicRepo:       new(testutil.MockTopicRepo),
		enrollmentRepo:  new(testutil.MockEnrollmentRepo),
		sessionRepo:     new(testutil.MockStudySessionRepo),
		achievementRepo: new(testutil.MockAchievementRepo),
		challengeRepo:   new(testutil.MockChallengeRepo),
		tutorClient:     new(testutil.MockTutorClient),
		tokens:          token.NewManager("test-secret", "test", time.Hour, nil),
	}

	gamifySvc := services.NewGamificationService(m.achievementRepo, m.challengeRepo, m.userRepo, m.sessionRepo)
	h := New(
		services.NewAuthService(m.userRepo, gamifySvc, m.tokens),
		services.NewCourseService(m.courseRepo, m.topicRepo),
		services.NewTopicService(m.topicRepo, m.courseRepo),
		services.NewEnrollmentService(m.enrollmentRepo, m.courseRepo, m.userRepo),
		services.NewSessionService(m.sessionRepo, m.topicRepo, m.userRepo, gamifySvc),
		gamifySvc,
		services.NewTutorService(m.tutorClient),
		services.NewDashboardService(m.userRepo, m.courseRepo, m.enrollmentRepo, m.challengeRepo, m.achievementRepo, m.sessionRepo, 30),
		m.tokens,
	)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))
	return router, m
}

func doJSON(router *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	router, m := newTestRouter()

	created := &domain.User{ID: uuid.New(), Username: "alice", Role: domain.RoleStudent, Points: 10, StreakDays: 1}
	m.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	m.achievementRepo.On("GetByName", mock.Anything, domain.RegistrationAchievementName).Return(nil, domain.ErrAchievementNotFound)
	m.userRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(created, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct-horse",
		"role":     "student",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User  struct{ Username string }
		Token string
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestRegister_MissingFields(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_Conflict(t *testing.T) {
	router, m := newTestRouter()

	m.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrUsernameConflict)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "correct-horse",
		"role":     "student",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, m := newTestRouter()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	user := &domain.User{ID: uuid.New(), Username: "alice", PasswordHash: string(hash)}
	m.userRepo.On("GetByUsername", mock.Anything, "alice").Return(user, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_NoToken(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_BadToken(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/courses", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCourse_StudentForbidden(t *testing.T) {
	router, m := newTestRouter()

	bearer, err := m.tokens.Issue(uuid.New(), domain.RoleStudent)
	assert.NoError(t, err)

	w := doJSON(router, http.MethodPost, "/api/v1/courses", bearer, gin.H{
		"name":       "Algebra",
		"difficulty": "beginner",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateCourse_Educator(t *testing.T) {
	router, m := newTestRouter()

	m.courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Course")).Return(nil)

	bearer, err := m.tokens.Issue(uuid.New(), domain.RoleEducator)
	assert.NoError(t, err)

	w := doJSON(router, http.MethodPost, "/api/v1/courses", bearer, gin.H{
		"name":            "Algebra Fundamentals",
		"description":     "Basic algebraic concepts and equations",
		"subject":         "Math",
		"education_level": "high_school",
		"difficulty":      "beginner",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	m.courseRepo.AssertExpectations(t)
}

func TestGetCourse_NotFound(t *testing.T) {
	router, m := newTestRouter()

	id := uuid.New()
	m.courseRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCourseNotFound)

	bearer, _ := m.tokens.Issue(uuid.New(), domain.RoleStudent)
	w := doJSON(router, http.MethodGet, "/api/v1/courses/"+id.String(), bearer, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnroll(t *testing.T) {
	router, m := newTestRouter()

	userID := uuid.New()
	courseID := uuid.New()
	m.courseRepo.On("GetByID", mock.Anything, courseID).Return(&domain.Course{ID: courseID}, nil)
	m.enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(nil, domain.ErrEnrollmentNotFound)
	m.enrollmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Enrollment")).Return(nil)
	m.userRepo.On("AddPoints", mock.Anything, userID, domain.EnrollmentPoints).Return(nil)

	bearer, _ := m.tokens.Issue(userID, domain.RoleStudent)
	w := doJSON(router, http.MethodPost, "/api/v1/courses/"+courseID.String()+"/enroll", bearer, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestEnroll_Duplicate(t *testing.T) {
	router, m := newTestRouter()

	userID := uuid.New()
	courseID := uuid.New()
	m.courseRepo.On("GetByID", mock.Anything, courseID).Return(&domain.Course{ID: courseID}, nil)
	m.enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(&domain.Enrollment{}, nil)

	bearer, _ := m.tokens.Issue(userID, domain.RoleStudent)
	w := doJSON(router, http.MethodPost, "/api/v1/courses/"+courseID.String()+"/enroll", bearer, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAsk_TutorUnavailable(t *testing.T) {
	router, m := newTestRouter()

	userID := uuid.New()
	m.userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	m.tutorClient.On("IsAvailable").Return(false)

	bearer, _ := m.tokens.Issue(userID, domain.RoleStudent)
	w := doJSON(router, http.MethodPost, "/api/v1/tutor/ask", bearer, gin.H{"question": "What is 2+2?"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStudyTimeToday(t *testing.T) {
	router, m := newTestRouter()

	userID := uuid.New()
	m.sessionRepo.On("TotalDurationSince", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(42*time.Minute, nil)

	bearer, _ := m.tokens.Issue(userID, domain.RoleStudent)
	w := doJSON(router, http.MethodGet, "/api/v1/sessions/today", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		StudyMinutesToday int `json:"study_minutes_today"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.StudyMinutesToday)
}

func TestEndSession_NotOwner(t *testing.T) {
	router, m := newTestRouter()

	sessionID := uuid.New()
	session := &domain.StudySession{ID: sessionID, UserID: uuid.New(), StartedAt: time.Now()}
	m.sessionRepo.On("GetByID", mock.Anything, sessionID).Return(session, nil)

	bearer, _ := m.tokens.Issue(uuid.New(), domain.RoleStudent)
	w := doJSON(router, http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/end", bearer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
