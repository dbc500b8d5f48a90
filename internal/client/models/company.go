package models

// Company is a regulated firm tracked by the backend.
type Company struct {
	Slug               string `json:"slug"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Country            string `json:"country"`
	InspectionCount    int    `json:"inspectionCount"`
	Form483Count       int    `json:"form483Count"`
	WarningLetterCount int    `json:"warningLetterCount"`
	LastInspectionDate string `json:"lastInspectionDate"`
}
