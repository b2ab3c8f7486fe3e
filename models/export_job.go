package models

import "time"

// Export job statuses.
const (
	ExportQueued     = "queued"
	ExportProcessing = "processing"
	ExportDone       = "done"
	ExportFailed     = "failed"
)

// ExportJob tracks an asynchronous CSV export. Jobs are ephemeral:
// they live in the server process, only the rendered file survives.
type ExportJob struct {
	JobID      string     `json:"job_id"`
	Instrument Instrument `json:"instrument,omitempty"` // empty = both instruments
	Status     string     `json:"status"`
	FilePath   string     `json:"-"`
	ErrorMsg   string     `json:"error,omitempty"`
	RangeFrom  *time.Time `json:"range_from,omitempty"`
	RangeTo    *time.Time `json:"range_to,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
