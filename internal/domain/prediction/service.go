package prediction

import "context"

// PredictionService defines business logic for the prediction history
type PredictionService interface {
	// List returns the full prediction history, newest first
	List(ctx context.Context) ([]PredictionResponse, error)

	// Save upserts a prediction keyed on (employee_id, shift_date)
	Save(ctx context.Context, req SavePredictionRequest) (PredictionResponse, error)
}

// AnalysisService submits one employee's metrics for risk analysis
type AnalysisService interface {
	// Analyze validates the metrics, forwards them to the configured
	// automation webhook, and returns the scored prediction
	Analyze(ctx context.Context, req AnalyzeEmployeeRequest) (PredictionResponse, error)
}
