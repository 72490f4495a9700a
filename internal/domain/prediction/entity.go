package prediction

import "time"

type RiskLevel string

const (
	RiskLevelGood     RiskLevel = "Good"
	RiskLevelMonitor  RiskLevel = "Monitor"
	RiskLevelWarning  RiskLevel = "Warning"
	RiskLevelCritical RiskLevel = "Critical"
)

// Rank returns the ordinal severity of the level, ascending from Good.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelGood:
		return 0
	case RiskLevelMonitor:
		return 1
	case RiskLevelWarning:
		return 2
	case RiskLevelCritical:
		return 3
	}
	return -1
}

type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "Pending"
	ActionStatusComplete  ActionStatus = "Complete"
	ActionStatusDismissed ActionStatus = "Dismissed"
)

// EmployeeMetrics is one employee's performance record for a single shift.
// ShiftDate is a calendar date in YYYY-MM-DD format.
type EmployeeMetrics struct {
	EmployeeID        string
	EmployeeName      string
	ShiftDate         string
	AdherencePct      float64
	TardinessCount    int
	AuxTimePct        float64
	CallsHandled      int
	UnplannedAbsences int
}

// Prediction is a stored analysis result: the input metrics plus the scored
// outcome and narrative guidance. The risk level is never stored on its own;
// it is always derived from Score (see RiskScore).
type Prediction struct {
	EmployeeMetrics
	AnalysisTimestamp  time.Time
	Score              RiskScore
	RiskFactors        string
	NeedsShiftCoverage bool
	AIPrediction       string
	AIRecommendation   string
	OTStrategy         string
	AuxStrategy        string
}

// Alert is a Critical-level prediction projected for action tracking.
type Alert struct {
	AlertTimestamp    time.Time
	EmployeeID        string
	EmployeeName      string
	RiskLevel         RiskLevel
	RiskScore         int
	RecommendedAction string
	ActionStatus      ActionStatus
}
