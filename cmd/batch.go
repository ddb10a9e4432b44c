// cmd/batch.go - multi-file tile pyramid generation command
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tilegen/tilegen/internal/apperror"
	"github.com/tilegen/tilegen/internal/batch"
	"github.com/tilegen/tilegen/internal/config"
)

// batchCmd generalizes generate to every .geojson file in a directory,
// running one independent generate_tiles invocation per file across a
// bounded worker pool.
var batchCmd = &cobra.Command{
	Use:   "batch <input_dir> <output_dir> <min_zoom> <max_zoom> [layer_name]",
	Short: "Generate tile pyramids for every GeoJSON file in a directory",
	Long: `Batch runs the generate pipeline once per *.geojson file found
directly under input_dir, writing each file's pyramid to its own
subdirectory of output_dir (named after the input file's stem), each
with its own metadata.json.`,
	Args: cobra.RangeArgs(4, 5),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("concurrency", 4, "number of input files processed concurrently")
	batchCmd.Flags().Bool("fail-on-error", false, "stop the batch on the first failing file")
	viper.BindPFlag("batch.concurrency", batchCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("batch.fail_on_error", batchCmd.Flags().Lookup("fail-on-error"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return apperror.New(apperror.CodeUsage, "invalid configuration", err)
	}

	inputDir := args[0]
	outputDir := args[1]

	minZoom, err := parseZoomArg(args[2], "min_zoom")
	if err != nil {
		return err
	}
	maxZoom, err := parseZoomArg(args[3], "max_zoom")
	if err != nil {
		return err
	}
	layerName := cfg.Output.LayerName
	if len(args) == 5 {
		layerName = args[4]
	}

	files, err := findGeoJSONFiles(inputDir)
	if err != nil {
		return apperror.New(apperror.CodeIO, "failed to list input directory", err)
	}
	if len(files) == 0 {
		return apperror.New(apperror.CodeUsage, fmt.Sprintf("no .geojson files found under %s", inputDir), nil)
	}

	jobConfig := &batch.JobConfig{
		MinZoom:     minZoom,
		MaxZoom:     maxZoom,
		LayerName:   layerName,
		OutputRoot:  outputDir,
		Gzip:        cfg.Output.Gzip,
		Concurrency: cfg.Batch.Concurrency,
		FailOnError: cfg.Batch.FailOnError,
	}
	job := batch.NewJob(fmt.Sprintf("batch-%d", time.Now().Unix()), files, jobConfig)

	var reporter batch.ProgressReporter
	if cfg.Logging.Progress {
		reporter = NewConsoleProgressReporter()
	}
	processor := batch.NewBatchProcessor(reporter)

	if cfg.Logging.Verbose {
		fmt.Fprintf(os.Stderr, "Processing %d files from %s\n", len(files), inputDir)
	}

	if err := processor.Process(context.Background(), job); err != nil {
		return apperror.Classify(err)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d/%d files, %d tiles written\n",
		job.Progress.ProcessedFiles-job.Progress.FailedFiles, job.Progress.TotalFiles, job.Progress.TotalTiles)
	return nil
}

func findGeoJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".geojson" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// ConsoleProgressReporter prints a rate-limited \r-overwrite progress line
// to stderr as batch files complete.
type ConsoleProgressReporter struct {
	lastUpdate time.Time
}

// NewConsoleProgressReporter creates a new console progress reporter.
func NewConsoleProgressReporter() *ConsoleProgressReporter {
	return &ConsoleProgressReporter{}
}

// ReportProgress reports job progress to stderr, rate-limited to once per second.
func (r *ConsoleProgressReporter) ReportProgress(job *batch.Job) {
	if time.Since(r.lastUpdate) < time.Second {
		return
	}
	fmt.Fprintf(os.Stderr, "\rProgress: %.1f%% (%d/%d files)",
		job.Progress.CalculateProgress(), job.Progress.ProcessedFiles, job.Progress.TotalFiles)
	r.lastUpdate = time.Now()
}

// ReportFileFailed reports a single file's failure to stderr.
func (r *ConsoleProgressReporter) ReportFileFailed(job *batch.Job, item *batch.WorkItem, err error) {
	fmt.Fprintf(os.Stderr, "\n%s: %v\n", item.Path, err)
}

// ReportJobComplete reports that every file in the job has been processed.
func (r *ConsoleProgressReporter) ReportJobComplete(job *batch.Job) {
	fmt.Fprintf(os.Stderr, "\rCompleted: 100%% (%d files processed)\n", job.Progress.ProcessedFiles)
}
