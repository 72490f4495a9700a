package batch

import (
	"context"
	"io"
)

// BatchService runs delimited-text uploads through row validation
type BatchService interface {
	// Start parses the upload (first record is the header), registers a job
	// and begins processing rows in input order. A parse failure is terminal
	// and no job is created.
	Start(ctx context.Context, upload io.Reader) (JobResponse, error)

	// Get returns the current snapshot of a job
	Get(ctx context.Context, jobID string) (JobResponse, error)

	// Cancel aborts a running job between rows
	Cancel(ctx context.Context, jobID string) (JobResponse, error)
}
