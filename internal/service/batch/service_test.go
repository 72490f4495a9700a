package batch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/batch"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/sse"
	"github.com/shiftsense/shiftsense-backend-go/internal/repository/memory"
)

const sampleCSV = `employee_id,employee_name,shift_date,adherence_pct,tardiness_count,aux_time_pct,calls_handled,unplanned_absences
EMP201,Jessica Torres,2024-11-16,42,6,58,38,3
EMP202,,2024-11-16,35,8,70,25,4
EMP203,Linda Chen,2024-11-16,,5,52,55,2
EMP206,Michael Santos,2024-11-16,94,0,14,158,0
`

// waitForTerminal polls until the job leaves the processing state.
func waitForTerminal(t *testing.T, svc batch.BatchService, jobID string) batch.JobResponse {
	t.Helper()
	ctx := context.Background()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := svc.Get(ctx, jobID)
		require.NoError(t, err)
		if snap.State.Terminal() {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("batch job did not finish in time")
	return batch.JobResponse{}
}

func newTestService(store *memory.PredictionStore, rowDelay time.Duration) batch.BatchService {
	return NewBatchService(store, sse.NewHub(), rowDelay)
}

func TestBatchCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memory.NewPredictionStore(0)
	svc := newTestService(store, 0)

	started, err := svc.Start(ctx, strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 4, started.TotalRows)

	final := waitForTerminal(t, svc, started.JobID)
	assert.Equal(t, batch.JobStateCompleted, final.State)
	assert.Equal(t, 4, final.Processed)
	assert.Equal(t, 2, final.ValidRows, "missing name and missing adherence both fail")
	assert.Equal(t, 2, final.InvalidRows)
	assert.Equal(t, 100.0, final.Progress)
	require.NotNil(t, final.CompletedAt)
}

func TestBatchDeterministicAcrossRuns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for run := 0; run < 3; run++ {
		svc := newTestService(memory.NewPredictionStore(0), 0)
		started, err := svc.Start(ctx, strings.NewReader(sampleCSV))
		require.NoError(t, err)

		final := waitForTerminal(t, svc, started.JobID)
		assert.Equal(t, 2, final.ValidRows, "run %d", run)
		assert.Equal(t, 2, final.InvalidRows, "run %d", run)
		assert.Equal(t, 100.0, final.Progress, "run %d", run)
	}
}

func TestBatchValidRowsLandInHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memory.NewPredictionStore(0)
	svc := newTestService(store, 0)
	before := store.Len()

	started, err := svc.Start(ctx, strings.NewReader(sampleCSV))
	require.NoError(t, err)
	waitForTerminal(t, svc, started.JobID)

	assert.Equal(t, before+2, store.Len(), "each valid row is scored and upserted")
}

func TestBatchParseFailureIsTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(memory.NewPredictionStore(0), 0)

	// Unclosed quote makes the reader fail mid-file.
	_, err := svc.Start(ctx, strings.NewReader("employee_name,adherence_pct\n\"broken,90\n"))
	assert.ErrorIs(t, err, batch.ErrMalformedUpload)
}

func TestBatchEmptyUpload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(memory.NewPredictionStore(0), 0)

	_, err := svc.Start(ctx, strings.NewReader(""))
	assert.ErrorIs(t, err, batch.ErrMissingHeader)

	// Header only: zero rows, completes immediately at 100%.
	started, err := svc.Start(ctx, strings.NewReader("employee_name,adherence_pct\n"))
	require.NoError(t, err)
	final := waitForTerminal(t, svc, started.JobID)
	assert.Equal(t, batch.JobStateCompleted, final.State)
	assert.Equal(t, 0, final.TotalRows)
	assert.Equal(t, 100.0, final.Progress)
}

func TestBatchProgressEventsMonotonic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hub := sse.NewHub()
	svc := NewBatchService(memory.NewPredictionStore(0), hub, 2*time.Millisecond)

	// Subscribing needs the job ID, so build a bigger input and subscribe
	// right after Start; the row delay keeps events flowing afterwards.
	var sb strings.Builder
	sb.WriteString("employee_name,adherence_pct\n")
	for i := 0; i < 50; i++ {
		sb.WriteString("Jane Smith,90\n")
	}

	started, err := svc.Start(ctx, strings.NewReader(sb.String()))
	require.NoError(t, err)

	ch, cleanup := hub.Subscribe(started.JobID)
	defer cleanup()

	lastProcessed := -1
	lastProgress := -1.0
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-ch:
			data, ok := ev.Data.(batch.ProgressEvent)
			require.True(t, ok)
			assert.GreaterOrEqual(t, data.Processed, lastProcessed)
			assert.GreaterOrEqual(t, data.Progress, lastProgress)
			lastProcessed = data.Processed
			lastProgress = data.Progress
			if ev.Event == "done" {
				assert.True(t, data.State.Terminal())
				return
			}
		case <-deadline:
			t.Fatal("no terminal event received")
		}
	}
}

func TestBatchCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(memory.NewPredictionStore(0), 10*time.Millisecond)

	var sb strings.Builder
	sb.WriteString("employee_name,adherence_pct\n")
	for i := 0; i < 200; i++ {
		sb.WriteString("Jane Smith,90\n")
	}

	started, err := svc.Start(ctx, strings.NewReader(sb.String()))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, started.JobID)
	require.NoError(t, err)

	final := waitForTerminal(t, svc, started.JobID)
	assert.Equal(t, batch.JobStateCancelled, final.State)
	assert.Less(t, final.Processed, final.TotalRows)

	// Cancelling a finished job is rejected.
	_, err = svc.Cancel(ctx, started.JobID)
	assert.ErrorIs(t, err, batch.ErrJobAlreadyFinished)
}

func TestBatchUnknownJob(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(memory.NewPredictionStore(0), 0)

	_, err := svc.Get(ctx, "no-such-job")
	assert.ErrorIs(t, err, batch.ErrJobNotFound)

	_, err = svc.Cancel(ctx, "no-such-job")
	assert.ErrorIs(t, err, batch.ErrJobNotFound)
}
