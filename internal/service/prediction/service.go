package prediction

import (
	"context"
	"fmt"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/metrics"
)

type PredictionServiceImpl struct {
	repo prediction.PredictionRepository
}

func NewPredictionService(repo prediction.PredictionRepository) prediction.PredictionService {
	return &PredictionServiceImpl{repo: repo}
}

// List returns the full prediction history in canonical order
func (s *PredictionServiceImpl) List(ctx context.Context) ([]prediction.PredictionResponse, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return prediction.NewPredictionResponses(all), nil
}

// Save upserts a prediction keyed on (employee_id, shift_date)
func (s *PredictionServiceImpl) Save(ctx context.Context, req prediction.SavePredictionRequest) (prediction.PredictionResponse, error) {
	if err := req.Validate(); err != nil {
		return prediction.PredictionResponse{}, err
	}

	p := req.ToPrediction()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return prediction.PredictionResponse{}, fmt.Errorf("failed to save prediction: %w", err)
	}

	metrics.PredictionsSaved.Inc()
	return prediction.NewPredictionResponse(p), nil
}
