package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func metricsFor(adherence float64, tardiness int, aux float64, calls, absences int) EmployeeMetrics {
	return EmployeeMetrics{
		EmployeeID:        "E1000",
		EmployeeName:      "Test Employee",
		ShiftDate:         "2024-11-16",
		AdherencePct:      adherence,
		TardinessCount:    tardiness,
		AuxTimePct:        aux,
		CallsHandled:      calls,
		UnplannedAbsences: absences,
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		metrics   EmployeeMetrics
		wantScore int
		wantLevel RiskLevel
	}{
		{
			name:      "all bands tripped clamps to 100",
			metrics:   metricsFor(42, 6, 58, 38, 3),
			wantScore: 100, // 35+25+20+15+25 = 120 before clamping
			wantLevel: RiskLevelCritical,
		},
		{
			name:      "healthy shift scores zero",
			metrics:   metricsFor(95, 0, 8, 120, 0),
			wantScore: 0,
			wantLevel: RiskLevelGood,
		},
		{
			name:      "middle adherence band only",
			metrics:   metricsFor(70, 0, 8, 120, 0),
			wantScore: 20,
			wantLevel: RiskLevelMonitor,
		},
		{
			name:      "upper adherence band only",
			metrics:   metricsFor(84, 0, 8, 120, 0),
			wantScore: 10,
			wantLevel: RiskLevelGood,
		},
		{
			name:      "tardiness bands are exclusive",
			metrics:   metricsFor(95, 3, 8, 120, 0),
			wantScore: 15,
			wantLevel: RiskLevelGood,
		},
		{
			name:      "aux and calls bands combine",
			metrics:   metricsFor(95, 0, 41, 59, 0),
			wantScore: 35, // 20 aux + 15 calls
			wantLevel: RiskLevelMonitor,
		},
		{
			name:      "single absence adds 10",
			metrics:   metricsFor(95, 0, 8, 120, 1),
			wantScore: 10,
			wantLevel: RiskLevelGood,
		},
		{
			name:      "warning band combination",
			metrics:   metricsFor(74, 5, 8, 120, 0),
			wantScore: 45, // 20 adherence + 25 tardiness
			wantLevel: RiskLevelWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.metrics)
			assert.Equal(t, tt.wantScore, got.Value())
			assert.Equal(t, tt.wantLevel, got.Level())
		})
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	// Sweep extreme inputs; the result must stay in [0,100].
	for _, m := range []EmployeeMetrics{
		metricsFor(-50, 100, 100, -10, 50),
		metricsFor(0, 0, 0, 0, 0),
		metricsFor(100, 0, 0, 1000, 0),
	} {
		got := Score(m)
		assert.GreaterOrEqual(t, got.Value(), 0)
		assert.LessOrEqual(t, got.Value(), 100)
	}
}

func TestLevelForScoreBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLevelGood},
		{19, RiskLevelGood},
		{20, RiskLevelMonitor},
		{39, RiskLevelMonitor},
		{40, RiskLevelWarning},
		{69, RiskLevelWarning},
		{70, RiskLevelCritical},
		{100, RiskLevelCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestLevelForScoreMonotonic(t *testing.T) {
	t.Parallel()

	prev := LevelForScore(0)
	for score := 1; score <= 100; score++ {
		level := LevelForScore(score)
		assert.GreaterOrEqual(t, level.Rank(), prev.Rank(), "level dropped at score %d", score)
		prev = level
	}
}

func TestNewRiskScoreClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, NewRiskScore(-5).Value())
	assert.Equal(t, 100, NewRiskScore(120).Value())
	assert.Equal(t, 55, NewRiskScore(55).Value())
}

func TestRiskFactors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No significant risk factors", RiskFactors(metricsFor(95, 0, 8, 120, 0)))

	factors := RiskFactors(metricsFor(42, 6, 58, 38, 3))
	assert.Contains(t, factors, "low adherence")
	assert.Contains(t, factors, "high tardiness")
	assert.Contains(t, factors, "excessive aux time")
	assert.Contains(t, factors, "low call volume")
	assert.Contains(t, factors, "unplanned absences")
}
