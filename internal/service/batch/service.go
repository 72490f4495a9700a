package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/batch"
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/metrics"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/sse"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/validator"
)

// job is the mutable state of one batch run. Rows are processed strictly in
// input order on a single goroutine; counts only ever grow.
type job struct {
	mu sync.Mutex

	id          string
	state       batch.JobState
	rows        []map[string]string
	processed   int
	validRows   int
	invalidRows int
	startedAt   time.Time
	completedAt *time.Time
	cancel      context.CancelFunc
}

func (j *job) snapshot() batch.JobResponse {
	j.mu.Lock()
	defer j.mu.Unlock()

	progress := 100.0
	if len(j.rows) > 0 {
		progress = float64(j.processed) / float64(len(j.rows)) * 100
	} else if !j.state.Terminal() {
		progress = 0
	}

	return batch.JobResponse{
		JobID:       j.id,
		State:       j.state,
		TotalRows:   len(j.rows),
		Processed:   j.processed,
		ValidRows:   j.validRows,
		InvalidRows: j.invalidRows,
		Progress:    progress,
		StartedAt:   j.startedAt,
		CompletedAt: j.completedAt,
	}
}

func (j *job) progressEvent() batch.ProgressEvent {
	snap := j.snapshot()
	return batch.ProgressEvent{
		JobID:       snap.JobID,
		State:       snap.State,
		TotalRows:   snap.TotalRows,
		Processed:   snap.Processed,
		ValidRows:   snap.ValidRows,
		InvalidRows: snap.InvalidRows,
		Progress:    snap.Progress,
	}
}

type BatchServiceImpl struct {
	repo     prediction.PredictionRepository
	hub      *sse.Hub
	rowDelay time.Duration

	mu   sync.RWMutex
	jobs map[string]*job
}

func NewBatchService(repo prediction.PredictionRepository, hub *sse.Hub, rowDelay time.Duration) batch.BatchService {
	return &BatchServiceImpl{
		repo:     repo,
		hub:      hub,
		rowDelay: rowDelay,
		jobs:     make(map[string]*job),
	}
}

// Start parses the upload and begins processing on a background goroutine.
// Parsing is all-or-nothing: a malformed file aborts before any row work.
func (s *BatchServiceImpl) Start(ctx context.Context, upload io.Reader) (batch.JobResponse, error) {
	rows, err := parseRows(upload)
	if err != nil {
		return batch.JobResponse{}, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	j := &job{
		id:        uuid.NewString(),
		state:     batch.JobStateProcessing,
		rows:      rows,
		startedAt: time.Now(),
		cancel:    cancel,
	}

	s.mu.Lock()
	s.jobs[j.id] = j
	s.mu.Unlock()

	go s.run(runCtx, j)

	return j.snapshot(), nil
}

// Get returns the current snapshot of a job
func (s *BatchServiceImpl) Get(ctx context.Context, jobID string) (batch.JobResponse, error) {
	j, err := s.lookup(jobID)
	if err != nil {
		return batch.JobResponse{}, err
	}
	return j.snapshot(), nil
}

// Cancel aborts a running job between rows
func (s *BatchServiceImpl) Cancel(ctx context.Context, jobID string) (batch.JobResponse, error) {
	j, err := s.lookup(jobID)
	if err != nil {
		return batch.JobResponse{}, err
	}

	j.mu.Lock()
	if j.state.Terminal() {
		j.mu.Unlock()
		return batch.JobResponse{}, batch.ErrJobAlreadyFinished
	}
	j.mu.Unlock()

	j.cancel()
	return j.snapshot(), nil
}

func (s *BatchServiceImpl) lookup(jobID string) (*job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return nil, batch.ErrJobNotFound
	}
	return j, nil
}

func (s *BatchServiceImpl) run(ctx context.Context, j *job) {
	start := time.Now()

	for _, row := range j.rows {
		select {
		case <-ctx.Done():
			s.finish(j, batch.JobStateCancelled)
			metrics.BatchDuration.Observe(time.Since(start).Seconds())
			return
		default:
		}

		if isValidRow(row) {
			m := rowMetrics(row)
			score := prediction.Score(m)
			p := prediction.Prediction{
				EmployeeMetrics:    m,
				AnalysisTimestamp:  time.Now(),
				Score:              score,
				RiskFactors:        prediction.RiskFactors(m),
				NeedsShiftCoverage: score.Level() == prediction.RiskLevelCritical,
			}
			if err := s.repo.Upsert(context.Background(), p); err != nil {
				slog.Error("Failed to store batch prediction", "job_id", j.id, "employee_id", m.EmployeeID, "error", err)
			}
			j.mu.Lock()
			j.validRows++
			j.mu.Unlock()
			metrics.BatchRowsValid.Inc()
		} else {
			j.mu.Lock()
			j.invalidRows++
			j.mu.Unlock()
			metrics.BatchRowsInvalid.Inc()
		}

		j.mu.Lock()
		j.processed++
		j.mu.Unlock()

		s.hub.Publish(j.id, sse.Event{JobID: j.id, Event: "progress", Data: j.progressEvent()})

		if s.rowDelay > 0 {
			time.Sleep(s.rowDelay)
		}
	}

	s.finish(j, batch.JobStateCompleted)
	metrics.BatchDuration.Observe(time.Since(start).Seconds())
}

func (s *BatchServiceImpl) finish(j *job, state batch.JobState) {
	now := time.Now()
	j.mu.Lock()
	j.state = state
	j.completedAt = &now
	j.mu.Unlock()

	snap := j.snapshot()
	s.hub.Publish(j.id, sse.Event{JobID: j.id, Event: "done", Data: j.progressEvent()})
	slog.Info("Batch job finished", "job_id", j.id, "state", state,
		"processed", snap.Processed, "valid", snap.ValidRows, "invalid", snap.InvalidRows)
}

// isValidRow applies the per-row contract: employee_name and adherence_pct
// must be present and non-empty. Presence only, not a numeric-range check.
func isValidRow(row map[string]string) bool {
	return !validator.IsEmpty(row["employee_name"]) && !validator.IsEmpty(row["adherence_pct"])
}

// rowMetrics converts a validated row into a metrics record. Numerics that
// fail to parse fall back to the scorer defaults.
func rowMetrics(row map[string]string) prediction.EmployeeMetrics {
	m := prediction.EmployeeMetrics{
		EmployeeID:        row["employee_id"],
		EmployeeName:      row["employee_name"],
		ShiftDate:         row["shift_date"],
		AdherencePct:      parseFloat(row["adherence_pct"], prediction.DefaultAdherencePct),
		TardinessCount:    parseInt(row["tardiness_count"], prediction.DefaultTardinessCount),
		AuxTimePct:        parseFloat(row["aux_time_pct"], prediction.DefaultAuxTimePct),
		CallsHandled:      parseInt(row["calls_handled"], prediction.DefaultCallsHandled),
		UnplannedAbsences: parseInt(row["unplanned_absences"], prediction.DefaultUnplannedAbsences),
	}

	if validator.IsEmpty(m.EmployeeID) {
		m.EmployeeID = prediction.GenerateEmployeeID()
	}
	if _, ok := validator.IsValidDate(m.ShiftDate); !ok {
		m.ShiftDate = time.Now().Format("2006-01-02")
	}

	return m
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// parseRows reads the whole upload: the first record is the header, every
// following record becomes a string-keyed row map.
func parseRows(upload io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(upload)
	reader.TrimLeadingSpace = true
	// Tolerate ragged rows; missing cells become empty values.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, batch.ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", batch.ErrMalformedUpload, err)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", batch.ErrMalformedUpload, err)
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
