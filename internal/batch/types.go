// internal/batch/types.go - multi-file batch processing types
package batch

import (
	"time"

	"github.com/tilegen/tilegen/internal/generate"
)

// Job represents one multi-file batch run: a set of input GeoJSON files,
// each processed independently through generate.GenerateTiles and written
// to its own output subdirectory -- one generate invocation per input
// file.
type Job struct {
	ID        string
	Files     []string
	Config    *JobConfig
	Status    JobStatus
	Progress  *JobProgress
	CreatedAt time.Time
}

// JobConfig carries the per-invocation parameters shared by every file in
// the job.
type JobConfig struct {
	MinZoom     uint32
	MaxZoom     uint32
	LayerName   string
	OutputRoot  string
	Gzip        bool
	Concurrency int
	FailOnError bool
}

// JobStatus represents the current status of a batch job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobProgress tracks how many of the job's input files have been handled.
type JobProgress struct {
	TotalFiles     int64
	ProcessedFiles int64
	FailedFiles    int64
	TotalTiles     int64
	StartTime      time.Time
}

// WorkItem is one input file queued for generation.
type WorkItem struct {
	Path  string
	Index int
}

// WorkResult is the outcome of generating tiles for one WorkItem.
type WorkResult struct {
	Item     *WorkItem
	TileSet  *generate.TileSet
	Error    error
	Duration time.Duration
}

// ProgressReporter is notified as a job's files complete, mirroring the
// teacher's console progress reporter idiom.
type ProgressReporter interface {
	ReportProgress(job *Job)
	ReportFileFailed(job *Job, item *WorkItem, err error)
	ReportJobComplete(job *Job)
}

// NewJob creates a pending batch job over files.
func NewJob(id string, files []string, config *JobConfig) *Job {
	return &Job{
		ID:        id,
		Files:     files,
		Config:    config,
		Status:    JobStatusPending,
		Progress:  &JobProgress{TotalFiles: int64(len(files))},
		CreatedAt: time.Now(),
	}
}

// CalculateProgress returns the completion percentage of the job.
func (p *JobProgress) CalculateProgress() float64 {
	if p.TotalFiles == 0 {
		return 100
	}
	return float64(p.ProcessedFiles) / float64(p.TotalFiles) * 100
}
