// internal/batch/processor.go - multi-file batch processing implementation
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tilegen/tilegen/internal/generate"
	"github.com/tilegen/tilegen/internal/output"
)

// BatchProcessor runs generate.GenerateTiles once per input file across a
// bounded worker pool: one worker thread per input file, parallelism
// applied only across independent invocations, never inside one. Each
// invocation remains single-threaded and independent; no state is shared
// across files beyond the job's progress counters.
type BatchProcessor struct {
	reporter ProgressReporter
	mutex    sync.Mutex
}

// NewBatchProcessor creates a batch processor that reports through
// reporter, which may be nil.
func NewBatchProcessor(reporter ProgressReporter) *BatchProcessor {
	return &BatchProcessor{reporter: reporter}
}

// Process runs job to completion, writing each file's tile pyramid and
// metadata.json under its own subdirectory of job.Config.OutputRoot.
func (bp *BatchProcessor) Process(ctx context.Context, job *Job) error {
	bp.mutex.Lock()
	job.Status = JobStatusRunning
	job.Progress.StartTime = time.Now()
	bp.mutex.Unlock()

	items := make([]*WorkItem, len(job.Files))
	for i, f := range job.Files {
		items[i] = &WorkItem{Path: f, Index: i}
	}

	workChan := make(chan *WorkItem, len(items))
	resultChan := make(chan *WorkResult, len(items))
	for _, item := range items {
		workChan <- item
	}
	close(workChan)

	concurrency := job.Config.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > len(items) && len(items) > 0 {
		concurrency = len(items)
	}

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bp.worker(ctx, job.Config, workChan, resultChan)
		}()
	}
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var firstErr error
	for result := range resultChan {
		bp.mutex.Lock()
		job.Progress.ProcessedFiles++
		if result.Error != nil {
			job.Progress.FailedFiles++
		} else {
			job.Progress.TotalTiles += int64(result.TileSet.Count())
		}
		bp.mutex.Unlock()

		if result.Error != nil {
			if bp.reporter != nil {
				bp.reporter.ReportFileFailed(job, result.Item, result.Error)
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", result.Item.Path, result.Error)
			}
			if job.Config.FailOnError {
				job.Status = JobStatusFailed
				return firstErr
			}
			continue
		}

		if bp.reporter != nil {
			bp.reporter.ReportProgress(job)
		}
	}

	if firstErr != nil {
		job.Status = JobStatusFailed
		return firstErr
	}

	job.Status = JobStatusCompleted
	if bp.reporter != nil {
		bp.reporter.ReportJobComplete(job)
	}
	return nil
}

func (bp *BatchProcessor) worker(ctx context.Context, cfg *JobConfig, in <-chan *WorkItem, out chan<- *WorkResult) {
	for item := range in {
		select {
		case <-ctx.Done():
			out <- &WorkResult{Item: item, Error: ctx.Err()}
			continue
		default:
		}
		out <- bp.processFile(cfg, item)
	}
}

func (bp *BatchProcessor) processFile(cfg *JobConfig, item *WorkItem) *WorkResult {
	start := time.Now()

	data, err := os.ReadFile(item.Path)
	if err != nil {
		return &WorkResult{Item: item, Error: fmt.Errorf("read failed: %w", err), Duration: time.Since(start)}
	}

	ts, err := generate.GenerateTiles(data, cfg.MinZoom, cfg.MaxZoom, cfg.LayerName)
	if err != nil {
		return &WorkResult{Item: item, Error: err, Duration: time.Since(start)}
	}

	outDir := filepath.Join(cfg.OutputRoot, fileStem(item.Path))
	writer := output.NewDirWriter(&output.WriterConfig{OutputDir: outDir, Gzip: cfg.Gzip})
	if _, err := writer.WriteTileSet(ts); err != nil {
		return &WorkResult{Item: item, Error: fmt.Errorf("write failed: %w", err), Duration: time.Since(start)}
	}

	formatter := output.NewTippecanoeFormatter(output.NewFormatterConfig(fileStem(item.Path), "generated by tilegen batch"))
	metaBytes, err := formatter.Format(ts)
	if err != nil {
		return &WorkResult{Item: item, Error: fmt.Errorf("metadata formatting failed: %w", err), Duration: time.Since(start)}
	}
	if err := output.WriteMetadataFile(outDir, metaBytes); err != nil {
		return &WorkResult{Item: item, Error: err, Duration: time.Since(start)}
	}

	return &WorkResult{Item: item, TileSet: ts, Duration: time.Since(start)}
}

func fileStem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
