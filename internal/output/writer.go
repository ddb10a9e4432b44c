// internal/output/writer.go - tile pyramid writing implementation
package output

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tilegen/tilegen/internal/generate"
)

// DirWriter writes a TileSet's artifacts under OutputDir in the
// "{z}/{x}/{y}.pbf" layout, creating directories as needed.
type DirWriter struct {
	config *WriterConfig
}

// NewDirWriter creates a writer rooted at config.OutputDir.
func NewDirWriter(config *WriterConfig) *DirWriter {
	return &DirWriter{config: config}
}

// WriteTileSet writes every artifact in ts to disk and returns the total
// number of tile bytes written. With Gzip set, this counts the
// uncompressed bytes, not the compressed size on disk.
func (w *DirWriter) WriteTileSet(ts *generate.TileSet) (int64, error) {
	var total int64
	for i := 0; i < ts.Count(); i++ {
		n, err := w.writeArtifact(ts.Path(i), ts.Data(i))
		if err != nil {
			return total, fmt.Errorf("failed to write %s: %w", ts.Path(i), err)
		}
		total += n
	}
	return total, nil
}

func (w *DirWriter) writeArtifact(relPath string, data []byte) (int64, error) {
	fullPath := filepath.Join(w.config.OutputDir, relPath)
	if w.config.Gzip {
		fullPath += ".gz"
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	dest, err := newFileDestination(fullPath, w.config.Gzip)
	if err != nil {
		return 0, err
	}
	defer dest.Close()

	n, err := dest.Write(data)
	return int64(n), err
}

// fileDestination wraps an *os.File with optional gzip compression.
type fileDestination struct {
	file   *os.File
	writer io.WriteCloser
}

func newFileDestination(path string, gzipped bool) (*fileDestination, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	var writer io.WriteCloser = file
	if gzipped {
		writer = gzip.NewWriter(file)
	}
	return &fileDestination{file: file, writer: writer}, nil
}

func (d *fileDestination) Write(p []byte) (int, error) {
	return d.writer.Write(p)
}

func (d *fileDestination) Close() error {
	if d.writer != d.file {
		if err := d.writer.Close(); err != nil {
			d.file.Close()
			return err
		}
	}
	return d.file.Close()
}

// WriteMetadataFile writes the rendered metadata.json bytes as a sibling
// of the tile directory.
func WriteMetadataFile(outputDir string, data []byte) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, "metadata.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata.json: %w", err)
	}
	return nil
}
