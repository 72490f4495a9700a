package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/settings"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/metrics"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/webhook"
)

// Narrative templates returned with every analysis.
const (
	aiPredictionTemplate = "Based on the provided metrics, %s is showing a performance trend that requires attention."
	aiRecommendation     = "Immediate follow-up is recommended to address the key performance indicators."
	otStrategy           = "Consider pre-booking overtime with top performers as a contingency."
	auxStrategy          = "Analyze AUX usage patterns for potential system issues or coaching needs."
)

type AnalysisServiceImpl struct {
	repo            prediction.PredictionRepository
	settingsService settings.SettingsService
	webhookClient   *webhook.Client
}

func NewAnalysisService(
	repo prediction.PredictionRepository,
	settingsService settings.SettingsService,
	webhookClient *webhook.Client,
) prediction.AnalysisService {
	return &AnalysisServiceImpl{
		repo:            repo,
		settingsService: settingsService,
		webhookClient:   webhookClient,
	}
}

// Analyze validates the metrics, forwards them to the configured automation
// webhook and stores the scored prediction. The webhook is best effort: the
// external system is a black box and its failures never fail the analysis.
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req prediction.AnalyzeEmployeeRequest) (prediction.PredictionResponse, error) {
	if err := req.Validate(); err != nil {
		return prediction.PredictionResponse{}, err
	}

	m := req.Metrics()

	s.submitToWebhook(ctx, m)

	score := prediction.Score(m)
	p := prediction.Prediction{
		EmployeeMetrics:    m,
		AnalysisTimestamp:  time.Now(),
		Score:              score,
		RiskFactors:        prediction.RiskFactors(m),
		NeedsShiftCoverage: score.Level() == prediction.RiskLevelCritical,
		AIPrediction:       fmt.Sprintf(aiPredictionTemplate, m.EmployeeName),
		AIRecommendation:   aiRecommendation,
		OTStrategy:         otStrategy,
		AuxStrategy:        auxStrategy,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return prediction.PredictionResponse{}, fmt.Errorf("failed to store analysis result: %w", err)
	}

	metrics.AnalysesTotal.Inc()
	return prediction.NewPredictionResponse(p), nil
}

func (s *AnalysisServiceImpl) submitToWebhook(ctx context.Context, m prediction.EmployeeMetrics) {
	cfg, err := s.settingsService.GetWebhook(ctx)
	if err != nil {
		slog.Error("Failed to load webhook settings", "error", err)
		metrics.WebhookFailures.Inc()
		return
	}

	payload := map[string]interface{}{
		"employee_id":        m.EmployeeID,
		"employee_name":      m.EmployeeName,
		"shift_date":         m.ShiftDate,
		"adherence_pct":      m.AdherencePct,
		"tardiness_count":    m.TardinessCount,
		"aux_time_pct":       m.AuxTimePct,
		"calls_handled":      m.CallsHandled,
		"unplanned_absences": m.UnplannedAbsences,
	}

	if err := s.webhookClient.Submit(ctx, cfg.WebhookURL, payload); err != nil {
		slog.Warn("Webhook submission failed", "url", cfg.WebhookURL, "error", err)
		metrics.WebhookFailures.Inc()
		return
	}

	slog.Debug("Submitted metrics to webhook", "url", cfg.WebhookURL, "employee_id", m.EmployeeID)
}
