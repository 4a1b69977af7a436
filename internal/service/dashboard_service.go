package service

import "hermesoftware/byklab-api/internal/domain"

// DashboardService serves the member dashboard. The figures are fixed; no
// workout history is recorded yet.
type DashboardService interface {
	GetStats() domain.DashboardStats
}

type dashboardService struct{}

func NewDashboardService() DashboardService {
	return dashboardService{}
}

func (dashboardService) GetStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalWorkouts:  42,
		TotalDuration:  "18.5 saat",
		CaloriesBurned: 8420,
		MuscleBalance:  87,
		// Monday first.
		WeeklyProgress: []domain.DayProgress{
			{Day: "Pzt", Value: 65},
			{Day: "Sal", Value: 78},
			{Day: "Çar", Value: 82},
			{Day: "Per", Value: 71},
			{Day: "Cum", Value: 90},
			{Day: "Cmt", Value: 85},
			{Day: "Paz", Value: 73},
		},
	}
}
