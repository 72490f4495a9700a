package prediction

import "strings"

// Defaults substituted for metrics the caller left out. They describe a
// healthy shift, so a sparse record scores low instead of tripping bands.
const (
	DefaultAdherencePct      = 90.0
	DefaultTardinessCount    = 0
	DefaultAuxTimePct        = 10.0
	DefaultCallsHandled      = 120
	DefaultUnplannedAbsences = 0
)

// RiskScore is a 0-100 risk figure. The value is clamped at construction and
// the level is always computed from it, so the two can never disagree.
type RiskScore struct {
	value int
}

func NewRiskScore(value int) RiskScore {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return RiskScore{value: value}
}

func (s RiskScore) Value() int {
	return s.value
}

func (s RiskScore) Level() RiskLevel {
	return LevelForScore(s.value)
}

// LevelForScore is the single source of truth for bucketing a score into a
// risk level. Lower bounds are inclusive, evaluated high to low.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskLevelCritical
	case score >= 40:
		return RiskLevelWarning
	case score >= 20:
		return RiskLevelMonitor
	default:
		return RiskLevelGood
	}
}

// Score computes the weighted-band risk score for a metrics record. Band
// contributions are independent and additive; the sum is clamped to [0,100].
func Score(m EmployeeMetrics) RiskScore {
	score := 0

	switch {
	case m.AdherencePct < 60:
		score += 35
	case m.AdherencePct < 75:
		score += 20
	case m.AdherencePct < 85:
		score += 10
	}

	switch {
	case m.TardinessCount > 4:
		score += 25
	case m.TardinessCount > 2:
		score += 15
	}

	switch {
	case m.AuxTimePct > 40:
		score += 20
	case m.AuxTimePct > 25:
		score += 10
	}

	switch {
	case m.CallsHandled < 60:
		score += 15
	case m.CallsHandled < 100:
		score += 5
	}

	switch {
	case m.UnplannedAbsences > 2:
		score += 25
	case m.UnplannedAbsences > 0:
		score += 10
	}

	return NewRiskScore(score)
}

// RiskFactors summarizes which scoring bands a metrics record tripped.
func RiskFactors(m EmployeeMetrics) string {
	var factors []string

	if m.AdherencePct < 85 {
		factors = append(factors, "low adherence")
	}
	if m.TardinessCount > 2 {
		factors = append(factors, "high tardiness")
	}
	if m.AuxTimePct > 25 {
		factors = append(factors, "excessive aux time")
	}
	if m.CallsHandled < 100 {
		factors = append(factors, "low call volume")
	}
	if m.UnplannedAbsences > 0 {
		factors = append(factors, "unplanned absences")
	}

	if len(factors) == 0 {
		return "No significant risk factors"
	}
	return strings.Join(factors, ", ")
}
