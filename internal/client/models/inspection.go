package models

// Inspection classifications as reported by the agency.
const (
	ClassificationNAI = "NAI" // no action indicated
	ClassificationVAI = "VAI" // voluntary action indicated
	ClassificationOAI = "OAI" // official action indicated
)

type Inspection struct {
	ID             string `json:"id"`
	CompanySlug    string `json:"companySlug"`
	CompanyName    string `json:"companyName"`
	FEINumber      string `json:"feiNumber"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	InspectionDate string `json:"inspectionDate"`
	Classification string `json:"classification"`
	ProjectArea    string `json:"projectArea"`
}
