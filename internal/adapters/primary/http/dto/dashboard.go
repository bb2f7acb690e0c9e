package dto

import "ai-tutor-service/internal/core/services"

// DashboardResponse aggregates the per-user landing view
type DashboardResponse struct {
	User               UserResponse                `json:"user"`
	RecommendedCourses []CourseResponse            `json:"recommended_courses"`
	Enrollments        []EnrollmentResponse        `json:"enrollments"`
	ActiveChallenges   []ChallengeResponse         `json:"active_challenges"`
	Achievements       []EarnedAchievementResponse `json:"achievements"`
	StudyMinutesToday  int                         `json:"study_minutes_today"`
	DailyGoalMinutes   int                         `json:"daily_goal_minutes"`
}

// ToDashboardResponse maps the service aggregate
func ToDashboardResponse(d *services.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		User:               ToUserResponse(d.User),
		RecommendedCourses: make([]CourseResponse, 0, len(d.RecommendedCourses)),
		Enrollments:        make([]EnrollmentResponse, 0, len(d.Enrollments)),
		ActiveChallenges:   make([]ChallengeResponse, 0, len(d.ActiveChallenges)),
		Achievements:       make([]EarnedAchievementResponse, 0, len(d.Achievements)),
		StudyMinutesToday:  d.StudyMinutesToday,
		DailyGoalMinutes:   d.DailyGoalMinutes,
	}
	for _, c := range d.RecommendedCourses {
		resp.RecommendedCourses = append(resp.RecommendedCourses, ToCourseResponse(c))
	}
	for _, e := range d.Enrollments {
		resp.Enrollments = append(resp.Enrollments, ToEnrollmentResponse(e))
	}
	for _, c := range d.ActiveChallenges {
		resp.ActiveChallenges = append(resp.ActiveChallenges, ToChallengeResponse(c))
	}
	for _, a := range d.Achievements {
		resp.Achievements = append(resp.Achievements, ToEarnedAchievementResponse(a))
	}
	return resp
}
