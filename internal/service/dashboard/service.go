package dashboard

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/dashboard"
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
)

// teamHealthCriticalThreshold is the critical-record count above which the
// team is reported "At Risk".
const teamHealthCriticalThreshold = 5

const alertLimit = 10
const highRiskLimit = 10

type DashboardServiceImpl struct {
	repo prediction.PredictionRepository

	// The store holds a sample, not the whole workforce, so population
	// figures are configured rather than derived.
	totalEmployees   int
	avgTeamAdherence float64
}

func NewDashboardService(repo prediction.PredictionRepository, totalEmployees int, avgTeamAdherence float64) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo:             repo,
		totalEmployees:   totalEmployees,
		avgTeamAdherence: avgTeamAdherence,
	}
}

// GetDashboard returns combined dashboard data, fanning the three store
// aggregates out in parallel goroutines.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var (
		counts   map[prediction.RiskLevel]int
		critical []prediction.Prediction
		highRisk []prediction.Prediction
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Per-level distribution
	g.Go(func() error {
		var err error
		counts, err = s.repo.CountByLevel(gCtx)
		return err
	})

	// 2. Recent Critical records for the alert feed
	g.Go(func() error {
		var err error
		critical, err = s.repo.RecentByLevel(gCtx, prediction.RiskLevelCritical, alertLimit)
		return err
	})

	// 3. Highest-scoring Critical/Warning records for the carousel
	g.Go(func() error {
		var err error
		highRisk, err = s.repo.TopByScore(gCtx,
			[]prediction.RiskLevel{prediction.RiskLevelCritical, prediction.RiskLevelWarning},
			highRiskLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	criticalCount := counts[prediction.RiskLevelCritical]
	warningCount := counts[prediction.RiskLevelWarning]

	teamHealth := "Good"
	if criticalCount > teamHealthCriticalThreshold {
		teamHealth = "At Risk"
	}

	return &dashboard.DashboardResponse{
		TotalEmployees:    s.totalEmployees,
		CriticalRiskCount: criticalCount,
		WarningCount:      warningCount,
		TeamHealthStatus:  teamHealth,
		AvgTeamAdherence:  s.avgTeamAdherence,
		RiskDistribution: []dashboard.RiskDistributionItem{
			{Name: string(prediction.RiskLevelCritical), Value: criticalCount},
			{Name: string(prediction.RiskLevelWarning), Value: warningCount},
			{Name: string(prediction.RiskLevelMonitor), Value: counts[prediction.RiskLevelMonitor]},
			{Name: string(prediction.RiskLevelGood), Value: counts[prediction.RiskLevelGood]},
		},
		RecentAlerts:      toAlerts(critical),
		HighRiskEmployees: prediction.NewPredictionResponses(highRisk),
	}, nil
}

// toAlerts projects Critical predictions into the alert feed. No action
// workflow exists yet, so the status is assigned randomly between Pending
// and Complete, matching the product's current behavior.
func toAlerts(predictions []prediction.Prediction) []dashboard.AlertResponse {
	alerts := make([]dashboard.AlertResponse, 0, len(predictions))
	for _, p := range predictions {
		status := prediction.ActionStatusPending
		if rand.Intn(2) == 1 {
			status = prediction.ActionStatusComplete
		}
		alerts = append(alerts, dashboard.AlertResponse{
			AlertTimestamp:    p.AnalysisTimestamp.UTC().Format(time.RFC3339),
			EmployeeID:        p.EmployeeID,
			EmployeeName:      p.EmployeeName,
			RiskLevel:         string(p.Score.Level()),
			RiskScore:         p.Score.Value(),
			RecommendedAction: p.AIRecommendation,
			ActionStatus:      string(status),
		})
	}
	return alerts
}
