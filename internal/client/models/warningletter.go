package models

type WarningLetter struct {
	ID          string `json:"id"`
	CompanySlug string `json:"companySlug"`
	CompanyName string `json:"companyName"`
	IssueDate   string `json:"issueDate"`
	Office      string `json:"office"`
	Subject     string `json:"subject"`
	Form483ID   string `json:"form483Id"`
}
