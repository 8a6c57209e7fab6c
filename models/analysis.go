package models

// Risk levels reported by document analysis
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// AnalysisResult summarizes an uploaded legal document
type AnalysisResult struct {
	FileName        string   `json:"file_name"`
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	RiskLevel       string   `json:"risk_level"`
	Recommendations []string `json:"recommendations"`
}
