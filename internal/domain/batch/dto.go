package batch

import "time"

type JobState string

const (
	JobStateProcessing JobState = "processing"
	JobStateCompleted  JobState = "completed"
	JobStateCancelled  JobState = "cancelled"
)

// Terminal reports whether the job has stopped processing rows.
func (s JobState) Terminal() bool {
	return s == JobStateCompleted || s == JobStateCancelled
}

// JobResponse is a snapshot of a batch run. Progress is a 0-100 percentage;
// it reaches 100 exactly when every row has been visited.
type JobResponse struct {
	JobID       string     `json:"job_id"`
	State       JobState   `json:"state"`
	TotalRows   int        `json:"total_rows"`
	Processed   int        `json:"processed"`
	ValidRows   int        `json:"valid_rows"`
	InvalidRows int        `json:"invalid_rows"`
	Progress    float64    `json:"progress"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ProgressEvent is one SSE payload published after each processed row and
// once more when the job reaches a terminal state.
type ProgressEvent struct {
	JobID       string   `json:"job_id"`
	State       JobState `json:"state"`
	TotalRows   int      `json:"total_rows"`
	Processed   int      `json:"processed"`
	ValidRows   int      `json:"valid_rows"`
	InvalidRows int      `json:"invalid_rows"`
	Progress    float64  `json:"progress"`
}
