package domain

// DashboardStats is the practice-wide summary shown on the dashboard.
type DashboardStats struct {
	TodayAppointments  int `json:"today_appointments"`
	WardPatients       int `json:"ward_patients"`
	ScheduledSurgeries int `json:"scheduled_surgeries"`
	EmergencyCases     int `json:"emergency_cases"`
	TotalPatients      int `json:"total_patients"`
}
