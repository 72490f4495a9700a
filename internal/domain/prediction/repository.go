package prediction

import "context"

type PredictionRepository interface {
	// ListAll returns the full history, newest analysis first.
	ListAll(ctx context.Context) ([]Prediction, error)

	// Upsert replaces the record matching (employee_id, shift_date) in place,
	// or inserts the prediction at the front when no match exists.
	Upsert(ctx context.Context, p Prediction) error

	// CountByLevel returns the number of stored predictions per risk level.
	CountByLevel(ctx context.Context) (map[RiskLevel]int, error)

	// RecentByLevel returns up to limit predictions of the given level in
	// store order (newest first).
	RecentByLevel(ctx context.Context, level RiskLevel, limit int) ([]Prediction, error)

	// TopByScore returns up to limit predictions whose level is in levels,
	// ordered by descending score. Ties keep their store order.
	TopByScore(ctx context.Context, levels []RiskLevel, limit int) ([]Prediction, error)
}
