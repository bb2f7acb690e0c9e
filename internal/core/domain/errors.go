package domain

import "errors"

// ============================================================================
// Account Errors
// ============================================================================

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameConflict   = errors.New("username already exists")
	ErrEmailConflict      = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username is required")
	ErrInvalidEmail       = errors.New("email is required")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("role must be student or educator")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient role for this operation")
)

// ============================================================================
// Catalog Errors
// ============================================================================

// Not found errors
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrTopicNotFound  = errors.New("topic not found")
)

// Validation errors
var (
	ErrInvalidCourseName = errors.New("course name is required")
	ErrInvalidTopicName  = errors.New("topic name is required")
	ErrInvalidDifficulty = errors.New("difficulty must be beginner, intermediate or advanced")
)

// Conflict errors
var (
	ErrCourseNameConflict = errors.New("course with this name already exists")
)

// ============================================================================
// Enrollment Errors
// ============================================================================

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this course")
	ErrNotEnrolled        = errors.New("user is not enrolled in this course")
)

// ============================================================================
// Study Session Errors
// ============================================================================

var (
	ErrSessionNotFound     = errors.New("study session not found")
	ErrSessionNotOwned     = errors.New("study session belongs to another user")
	ErrSessionAlreadyEnded = errors.New("study session already ended")
)

// ============================================================================
// Gamification Errors
// ============================================================================

var (
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrAchievementConflict = errors.New("achievement with this name already exists")
)

// ============================================================================
// Tutor Errors
// ============================================================================

var (
	ErrTutorNotAvailable   = errors.New("tutor gateway is not available")
	ErrInvalidQuestion     = errors.New("question is required")
	ErrInvalidSubject      = errors.New("subject is required")
	ErrTutorBadSuggestions = errors.New("tutor returned malformed topic suggestions")
)
