package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/repository/memory"
)

func TestGetDashboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memory.NewPredictionStore(40)
	svc := NewDashboardService(store, 120, 88)

	data, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 120, data.TotalEmployees)
	assert.Equal(t, 88.0, data.AvgTeamAdherence)

	// Distribution covers all four levels and sums to the store size.
	require.Len(t, data.RiskDistribution, 4)
	total := 0
	for _, item := range data.RiskDistribution {
		total += item.Value
	}
	assert.Equal(t, store.Len(), total)

	// Counts echo the distribution entries.
	assert.Equal(t, data.RiskDistribution[0].Value, data.CriticalRiskCount)
	assert.Equal(t, data.RiskDistribution[1].Value, data.WarningCount)

	// Team health follows the critical-count threshold.
	if data.CriticalRiskCount > 5 {
		assert.Equal(t, "At Risk", data.TeamHealthStatus)
	} else {
		assert.Equal(t, "Good", data.TeamHealthStatus)
	}

	// Alert feed: Critical only, capped at 10, Pending or Complete.
	assert.LessOrEqual(t, len(data.RecentAlerts), 10)
	for _, a := range data.RecentAlerts {
		assert.Equal(t, string(prediction.RiskLevelCritical), a.RiskLevel)
		assert.Contains(t,
			[]string{string(prediction.ActionStatusPending), string(prediction.ActionStatusComplete)},
			a.ActionStatus)
	}

	// High-risk carousel: Critical/Warning only, descending score.
	assert.LessOrEqual(t, len(data.HighRiskEmployees), 10)
	for i, p := range data.HighRiskEmployees {
		assert.Contains(t,
			[]string{string(prediction.RiskLevelCritical), string(prediction.RiskLevelWarning)},
			p.CalculatedRiskLevel)
		if i > 0 {
			assert.LessOrEqual(t, p.CalculatedRiskScore, data.HighRiskEmployees[i-1].CalculatedRiskScore)
		}
	}
}

func TestGetDashboardTeamHealthThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Only the empty synthetic set: the five at-risk fixture rows score
	// Critical, which is not above the threshold of 5.
	store := memory.NewPredictionStore(0)
	svc := NewDashboardService(store, 120, 88)

	data, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, data.CriticalRiskCount)
	assert.Equal(t, "Good", data.TeamHealthStatus)

	// One more Critical record tips the team to At Risk.
	m := prediction.EmployeeMetrics{
		EmployeeID: "E9001", EmployeeName: "Robert Kim", ShiftDate: "2025-02-01",
		AdherencePct: 30, TardinessCount: 9, AuxTimePct: 70, CallsHandled: 10, UnplannedAbsences: 5,
	}
	score := prediction.Score(m)
	require.Equal(t, prediction.RiskLevelCritical, score.Level())
	require.NoError(t, store.Upsert(ctx, prediction.Prediction{
		EmployeeMetrics: m, Score: score, NeedsShiftCoverage: true,
	}))

	data, err = svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, data.CriticalRiskCount)
	assert.Equal(t, "At Risk", data.TeamHealthStatus)
}
