package prediction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/validator"
)

// ========================================
// PREDICTION DTOs
// ========================================

// AnalyzeEmployeeRequest carries one employee's metrics for analysis.
// Optional numeric fields left out of the payload get healthy defaults.
type AnalyzeEmployeeRequest struct {
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	ShiftDate         string   `json:"shift_date"`
	AdherencePct      *float64 `json:"adherence_pct"`
	TardinessCount    *int     `json:"tardiness_count"`
	AuxTimePct        *float64 `json:"aux_time_pct"`
	CallsHandled      *int     `json:"calls_handled"`
	UnplannedAbsences *int     `json:"unplanned_absences"`
}

func (r *AnalyzeEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if !validator.IsEmpty(r.ShiftDate) {
		if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_date",
				Message: "shift_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.AdherencePct != nil && (*r.AdherencePct < 0 || *r.AdherencePct > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "adherence_pct",
			Message: "adherence_pct must be between 0 and 100",
		})
	}

	if r.AuxTimePct != nil && (*r.AuxTimePct < 0 || *r.AuxTimePct > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "aux_time_pct",
			Message: "aux_time_pct must be between 0 and 100",
		})
	}

	if r.TardinessCount != nil && *r.TardinessCount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tardiness_count",
			Message: "tardiness_count must not be negative",
		})
	}

	if r.CallsHandled != nil && *r.CallsHandled < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "calls_handled",
			Message: "calls_handled must not be negative",
		})
	}

	if r.UnplannedAbsences != nil && *r.UnplannedAbsences < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "unplanned_absences",
			Message: "unplanned_absences must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Metrics materializes the request into a full metrics record: defaults fill
// the absent numerics, a missing employee ID becomes "E" plus four random
// digits, and a missing shift date becomes today.
func (r *AnalyzeEmployeeRequest) Metrics() EmployeeMetrics {
	m := EmployeeMetrics{
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		ShiftDate:         r.ShiftDate,
		AdherencePct:      DefaultAdherencePct,
		TardinessCount:    DefaultTardinessCount,
		AuxTimePct:        DefaultAuxTimePct,
		CallsHandled:      DefaultCallsHandled,
		UnplannedAbsences: DefaultUnplannedAbsences,
	}

	if validator.IsEmpty(m.EmployeeID) {
		m.EmployeeID = GenerateEmployeeID()
	}
	if validator.IsEmpty(m.ShiftDate) {
		m.ShiftDate = time.Now().Format("2006-01-02")
	}
	if r.AdherencePct != nil {
		m.AdherencePct = *r.AdherencePct
	}
	if r.TardinessCount != nil {
		m.TardinessCount = *r.TardinessCount
	}
	if r.AuxTimePct != nil {
		m.AuxTimePct = *r.AuxTimePct
	}
	if r.CallsHandled != nil {
		m.CallsHandled = *r.CallsHandled
	}
	if r.UnplannedAbsences != nil {
		m.UnplannedAbsences = *r.UnplannedAbsences
	}

	return m
}

// GenerateEmployeeID returns "E" followed by four random digits (1000-9999).
func GenerateEmployeeID() string {
	return fmt.Sprintf("E%d", 1000+rand.Intn(9000))
}

// SavePredictionRequest upserts a prediction into the history. The risk score
// and level are recomputed server-side from the embedded metrics, so a client
// cannot store an inconsistent score/level pair.
type SavePredictionRequest struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	ShiftDate         string  `json:"shift_date"`
	AdherencePct      float64 `json:"adherence_pct"`
	TardinessCount    int     `json:"tardiness_count"`
	AuxTimePct        float64 `json:"aux_time_pct"`
	CallsHandled      int     `json:"calls_handled"`
	UnplannedAbsences int     `json:"unplanned_absences"`
	AnalysisTimestamp string  `json:"analysis_timestamp"`
	RiskFactors       string  `json:"risk_factors"`
	AIPrediction      string  `json:"ai_prediction"`
	AIRecommendation  string  `json:"ai_recommendation"`
	OTStrategy        string  `json:"ot_strategy"`
	AuxStrategy       string  `json:"aux_strategy"`
}

func (r *SavePredictionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if validator.IsEmpty(r.ShiftDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.AnalysisTimestamp) {
		if _, ok := validator.IsValidDateTime(r.AnalysisTimestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "analysis_timestamp",
				Message: "analysis_timestamp must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToPrediction builds the entity, recomputing score, level, risk factors and
// the shift-coverage flag from the metrics. A missing timestamp becomes now.
func (r *SavePredictionRequest) ToPrediction() Prediction {
	m := EmployeeMetrics{
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		ShiftDate:         r.ShiftDate,
		AdherencePct:      r.AdherencePct,
		TardinessCount:    r.TardinessCount,
		AuxTimePct:        r.AuxTimePct,
		CallsHandled:      r.CallsHandled,
		UnplannedAbsences: r.UnplannedAbsences,
	}

	ts := time.Now()
	if parsed, ok := validator.IsValidDateTime(r.AnalysisTimestamp); ok {
		ts = parsed
	}

	score := Score(m)
	riskFactors := r.RiskFactors
	if validator.IsEmpty(riskFactors) {
		riskFactors = RiskFactors(m)
	}

	return Prediction{
		EmployeeMetrics:    m,
		AnalysisTimestamp:  ts,
		Score:              score,
		RiskFactors:        riskFactors,
		NeedsShiftCoverage: score.Level() == RiskLevelCritical,
		AIPrediction:       r.AIPrediction,
		AIRecommendation:   r.AIRecommendation,
		OTStrategy:         r.OTStrategy,
		AuxStrategy:        r.AuxStrategy,
	}
}

// PredictionResponse is the wire shape of a stored prediction.
type PredictionResponse struct {
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	ShiftDate           string  `json:"shift_date"`
	AdherencePct        float64 `json:"adherence_pct"`
	TardinessCount      int     `json:"tardiness_count"`
	AuxTimePct          float64 `json:"aux_time_pct"`
	CallsHandled        int     `json:"calls_handled"`
	UnplannedAbsences   int     `json:"unplanned_absences"`
	AnalysisTimestamp   string  `json:"analysis_timestamp"`
	CalculatedRiskScore int     `json:"calculated_risk_score"`
	CalculatedRiskLevel string  `json:"calculated_risk_level"`
	RiskFactors         string  `json:"risk_factors"`
	NeedsShiftCoverage  bool    `json:"needs_shift_coverage"`
	AIPrediction        string  `json:"ai_prediction"`
	AIRecommendation    string  `json:"ai_recommendation"`
	OTStrategy          string  `json:"ot_strategy"`
	AuxStrategy         string  `json:"aux_strategy"`
}

func NewPredictionResponse(p Prediction) PredictionResponse {
	return PredictionResponse{
		EmployeeID:          p.EmployeeID,
		EmployeeName:        p.EmployeeName,
		ShiftDate:           p.ShiftDate,
		AdherencePct:        p.AdherencePct,
		TardinessCount:      p.TardinessCount,
		AuxTimePct:          p.AuxTimePct,
		CallsHandled:        p.CallsHandled,
		UnplannedAbsences:   p.UnplannedAbsences,
		AnalysisTimestamp:   p.AnalysisTimestamp.UTC().Format(time.RFC3339),
		CalculatedRiskScore: p.Score.Value(),
		CalculatedRiskLevel: string(p.Score.Level()),
		RiskFactors:         p.RiskFactors,
		NeedsShiftCoverage:  p.NeedsShiftCoverage,
		AIPrediction:        p.AIPrediction,
		AIRecommendation:    p.AIRecommendation,
		OTStrategy:          p.OTStrategy,
		AuxStrategy:         p.AuxStrategy,
	}
}

func NewPredictionResponses(predictions []Prediction) []PredictionResponse {
	responses := make([]PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		responses = append(responses, NewPredictionResponse(p))
	}
	return responses
}
