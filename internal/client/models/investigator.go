package models

// Investigator is an agency employee who conducts inspections and signs
// Form 483s.
type Investigator struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	InspectionCount  int      `json:"inspectionCount"`
	Form483Count     int      `json:"form483Count"`
	LastActivityDate string   `json:"lastActivityDate"`
	Specialties      []string `json:"specialties"`
}
