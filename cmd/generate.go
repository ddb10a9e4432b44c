// cmd/generate.go - single-file tile pyramid generation command
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tilegen/tilegen/internal/apperror"
	"github.com/tilegen/tilegen/internal/config"
	"github.com/tilegen/tilegen/internal/generate"
	"github.com/tilegen/tilegen/internal/output"
)

// generateCmd implements the positional CLI surface:
// <input.geojson> <output_dir> <min_zoom> <max_zoom> [layer_name=default].
var generateCmd = &cobra.Command{
	Use:   "generate <input.geojson> <output_dir> <min_zoom> <max_zoom> [layer_name]",
	Short: "Generate a tile pyramid from a single GeoJSON file",
	Long: `Generate reads a GeoJSON FeatureCollection, runs the full
Parser -> Projector -> Tiler -> Encoder pipeline, and writes one
{z}/{x}/{y}.pbf file per non-empty tile under output_dir, plus a
tippecanoe-style metadata.json sibling.`,
	Args: cobra.RangeArgs(4, 5),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return apperror.New(apperror.CodeUsage, "invalid configuration", err)
	}

	inputPath := args[0]
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
	if layerName == "" {
		return apperror.New(apperror.CodeUsage, "layer_name must not be empty", nil)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return apperror.New(apperror.CodeIO, "failed to read input file", err)
	}

	if cfg.Logging.Verbose {
		fmt.Fprintf(os.Stderr, "Parsing %s (%d bytes)\n", inputPath, len(data))
	}

	ts, err := generate.GenerateTiles(data, minZoom, maxZoom, layerName)
	if err != nil {
		return apperror.Classify(err)
	}

	writer := output.NewDirWriter(&output.WriterConfig{
		OutputDir: outputDir,
		Gzip:      cfg.Output.Gzip,
	})
	bytesWritten, err := writer.WriteTileSet(ts)
	if err != nil {
		return apperror.New(apperror.CodeIO, "failed to write tiles", err)
	}

	formatter := output.NewTippecanoeFormatter(&output.FormatterConfig{
		Name:         layerName,
		Description:  fmt.Sprintf("generated by tilegen from %s", inputPath),
		Pretty:       cfg.Output.PrettyMetadata,
		IncludeStats: true,
	})
	metaBytes, err := formatter.Format(ts)
	if err != nil {
		return apperror.New(apperror.CodeIO, "failed to format metadata.json", err)
	}
	if err := output.WriteMetadataFile(outputDir, metaBytes); err != nil {
		return apperror.New(apperror.CodeIO, "failed to write metadata.json", err)
	}

	if cfg.Logging.Verbose {
		md := ts.Metadata()
		fmt.Fprintf(os.Stderr, "Wrote %d tiles (%d bytes) for zoom %d-%d, layer %q\n",
			ts.Count(), bytesWritten, md.MinZoom, md.MaxZoom, md.LayerName)
	}

	return nil
}

func parseZoomArg(s, name string) (uint32, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 15 {
		return 0, apperror.New(apperror.CodeUsage, fmt.Sprintf("%s must be an integer in [0,15], got %q", name, s), err)
	}
	return uint32(v), nil
}
