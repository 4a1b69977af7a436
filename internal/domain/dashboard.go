package domain

// DashboardStats is the payload shown on the member dashboard.
type DashboardStats struct {
	TotalWorkouts  int           `json:"total_workouts"`
	TotalDuration  string        `json:"total_duration"`
	CaloriesBurned int           `json:"calories_burned"`
	MuscleBalance  int           `json:"muscle_balance"` // Percentage, 0-100
	WeeklyProgress []DayProgress `json:"weekly_progress"`
}

// DayProgress is one day of the weekly progress chart.
type DayProgress struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}
