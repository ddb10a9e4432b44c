// internal/output/types.go - tile and metadata output configuration
package output

import "github.com/tilegen/tilegen/internal/generate"

// WriterConfig configures how a generated tile pyramid is written to disk.
type WriterConfig struct {
	// OutputDir is the root directory under which "{z}/{x}/{y}.pbf" paths
	// are created.
	OutputDir string
	// Gzip compresses each tile artifact on write when set. The core
	// pipeline always emits uncompressed bytes and leaves gzip to the
	// caller; this is that caller-side option.
	Gzip bool
}

// FormatterConfig configures the tippecanoe-convention metadata.json
// sibling file written alongside a tile pyramid.
type FormatterConfig struct {
	Name         string
	Description  string
	Pretty       bool
	IncludeStats bool
}

// TileWriter writes a generated TileSet's artifacts to a destination.
type TileWriter interface {
	WriteTileSet(ts *generate.TileSet) (int64, error)
}

// MetadataFormatter renders a TileSet's metadata into the tippecanoe
// metadata.json convention.
type MetadataFormatter interface {
	Format(ts *generate.TileSet) ([]byte, error)
}

// NewWriterConfig creates a WriterConfig with the tool's defaults.
func NewWriterConfig(outputDir string) *WriterConfig {
	return &WriterConfig{OutputDir: outputDir, Gzip: false}
}

// NewFormatterConfig creates a FormatterConfig with the tool's defaults.
func NewFormatterConfig(name, description string) *FormatterConfig {
	return &FormatterConfig{Name: name, Description: description, Pretty: true, IncludeStats: true}
}
