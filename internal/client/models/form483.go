package models

// Form483 is an inspectional-observations record (FDA Form 483).
type Form483 struct {
	ID              string `json:"id"`
	CompanySlug     string `json:"companySlug"`
	CompanyName     string `json:"companyName"`
	FEINumber       string `json:"feiNumber"`
	IssueDate       string `json:"issueDate"`
	NumObservations int    `json:"numObservations"`
	Converted       bool   `json:"converted"` // escalated to a warning letter
	DocumentURL     string `json:"documentUrl"`
}
