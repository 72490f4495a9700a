package memory

import (
	"context"
	"math/rand"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/fixtures"
)

// PredictionStore is the in-memory prediction history. It owns the full
// working set for the session; there is no durable backing store.
type PredictionStore struct {
	mu          sync.RWMutex
	predictions []prediction.Prediction
}

// NewPredictionStore seeds a store with the hand-authored fixture rows plus
// syntheticCount randomized rows, sorted newest analysis first.
func NewPredictionStore(syntheticCount int) *PredictionStore {
	now := time.Now()
	var predictions []prediction.Prediction

	for i, m := range fixtures.BaseMetrics() {
		predictions = append(predictions, seedPrediction(m, now.AddDate(0, 0, -i)))
	}

	for i := 0; i < syntheticCount; i++ {
		ts := now.AddDate(0, 0, -(i + 10))
		m := prediction.EmployeeMetrics{
			EmployeeID:        "E" + strconv.Itoa(1000+i),
			EmployeeName:      fixtures.GenericNames[i%len(fixtures.GenericNames)],
			ShiftDate:         ts.Format("2006-01-02"),
			AdherencePct:      float64(50 + rand.Intn(50)),
			TardinessCount:    rand.Intn(5),
			AuxTimePct:        float64(rand.Intn(30)),
			CallsHandled:      50 + rand.Intn(100),
			UnplannedAbsences: rand.Intn(3),
		}
		predictions = append(predictions, seedPrediction(m, ts))
	}

	slices.SortStableFunc(predictions, func(a, b prediction.Prediction) int {
		return b.AnalysisTimestamp.Compare(a.AnalysisTimestamp)
	})

	return &PredictionStore{predictions: predictions}
}

func seedPrediction(m prediction.EmployeeMetrics, ts time.Time) prediction.Prediction {
	score := prediction.Score(m)
	return prediction.Prediction{
		EmployeeMetrics:    m,
		AnalysisTimestamp:  ts,
		Score:              score,
		RiskFactors:        prediction.RiskFactors(m),
		NeedsShiftCoverage: score.Level() == prediction.RiskLevelCritical,
		AIPrediction:       fixtures.SeedAIPrediction,
		AIRecommendation:   fixtures.SeedAIRecommendation,
		OTStrategy:         fixtures.SeedOTStrategy,
		AuxStrategy:        fixtures.SeedAuxStrategy,
	}
}

// ListAll implements prediction.PredictionRepository.
func (s *PredictionStore) ListAll(ctx context.Context) ([]prediction.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]prediction.Prediction, len(s.predictions))
	copy(out, s.predictions)
	return out, nil
}

// Upsert implements prediction.PredictionRepository. A record matching the
// (employee_id, shift_date) pair is replaced in place; otherwise the
// prediction is inserted at the front.
func (s *PredictionStore) Upsert(ctx context.Context, p prediction.Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.predictions {
		if existing.EmployeeID == p.EmployeeID && existing.ShiftDate == p.ShiftDate {
			s.predictions[i] = p
			return nil
		}
	}

	s.predictions = append([]prediction.Prediction{p}, s.predictions...)
	return nil
}

// CountByLevel implements prediction.PredictionRepository.
func (s *PredictionStore) CountByLevel(ctx context.Context) (map[prediction.RiskLevel]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[prediction.RiskLevel]int{
		prediction.RiskLevelGood:     0,
		prediction.RiskLevelMonitor:  0,
		prediction.RiskLevelWarning:  0,
		prediction.RiskLevelCritical: 0,
	}
	for _, p := range s.predictions {
		counts[p.Score.Level()]++
	}
	return counts, nil
}

// RecentByLevel implements prediction.PredictionRepository.
func (s *PredictionStore) RecentByLevel(ctx context.Context, level prediction.RiskLevel, limit int) ([]prediction.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []prediction.Prediction
	for _, p := range s.predictions {
		if p.Score.Level() != level {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// TopByScore implements prediction.PredictionRepository. The sort is stable,
// so equal scores keep their store order.
func (s *PredictionStore) TopByScore(ctx context.Context, levels []prediction.RiskLevel, limit int) ([]prediction.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []prediction.Prediction
	for _, p := range s.predictions {
		if slices.Contains(levels, p.Score.Level()) {
			out = append(out, p)
		}
	}

	slices.SortStableFunc(out, func(a, b prediction.Prediction) int {
		return b.Score.Value() - a.Score.Value()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of stored predictions.
func (s *PredictionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.predictions)
}
