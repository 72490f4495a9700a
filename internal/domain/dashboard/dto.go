package dashboard

import (
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
)

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	TotalEmployees    int                             `json:"total_employees"`
	CriticalRiskCount int                             `json:"critical_risk_count"`
	WarningCount      int                             `json:"warning_count"`
	TeamHealthStatus  string                          `json:"team_health_status"`
	AvgTeamAdherence  float64                         `json:"avg_team_adherence"`
	RiskDistribution  []RiskDistributionItem          `json:"risk_distribution"`
	RecentAlerts      []AlertResponse                 `json:"recent_alerts"`
	HighRiskEmployees []prediction.PredictionResponse `json:"high_risk_employees"`
}

// RiskDistributionItem is one slice of the risk-level pie chart
type RiskDistributionItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AlertResponse is a Critical-level prediction projected for action tracking
type AlertResponse struct {
	AlertTimestamp    string `json:"alert_timestamp"`
	EmployeeID        string `json:"employee_id"`
	EmployeeName      string `json:"employee_name"`
	RiskLevel         string `json:"risk_level"`
	RiskScore         int    `json:"risk_score"`
	RecommendedAction string `json:"recommended_action"`
	ActionStatus      string `json:"action_status"`
}
