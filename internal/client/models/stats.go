package models

// DashboardStats is the summary block shown on the landing view.
type DashboardStats struct {
	TotalCompanies      int `json:"totalCompanies"`
	TotalInspections    int `json:"totalInspections"`
	TotalForm483s       int `json:"totalForm483s"`
	TotalWarningLetters int `json:"totalWarningLetters"`
	RecentForm483s      int `json:"recentForm483s"` // issued in the last 30 days
}
