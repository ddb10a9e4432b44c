// internal/generate/tileset.go - the TileSet result type
package generate

import "github.com/tilegen/tilegen/pkg/tile"

// Metadata carries the summary information a generate invocation computes
// alongside its tiles. AttributeNames and FeatureCount are computed from
// the parsed feature collection when the TileSet is built, so a
// metadata.json writer can fill in a vector_layers/tilestats summary
// without re-reading the input.
type Metadata struct {
	MinZoom        uint32
	MaxZoom        uint32
	LayerName      string
	Bounds         [4]float64 // minLon, minLat, maxLon, maxLat
	Center         [2]float64 // lon, lat
	FeatureCount   int
	AttributeNames []string
}

// Artifact is one emitted tile: its coordinate, on-disk path, and bytes.
type Artifact struct {
	Coord tile.Coordinate
	Path  string
	Data  []byte
}

// TileSet is the result of a successful generate invocation, exposing
// count/path/data/metadata accessors over its emitted artifacts.
type TileSet struct {
	artifacts []Artifact
	metadata  Metadata
}

// Count returns the number of emitted tile artifacts.
func (ts *TileSet) Count() int {
	return len(ts.artifacts)
}

// Path returns the "{z}/{x}/{y}.pbf" path of artifact i.
func (ts *TileSet) Path(i int) string {
	return ts.artifacts[i].Path
}

// Data returns the serialized MVT bytes of artifact i.
func (ts *TileSet) Data(i int) []byte {
	return ts.artifacts[i].Data
}

// Coordinate returns the tile coordinate of artifact i.
func (ts *TileSet) Coordinate(i int) tile.Coordinate {
	return ts.artifacts[i].Coord
}

// Metadata returns the bounds, center, zoom range, and layer name computed
// for this invocation.
func (ts *TileSet) Metadata() Metadata {
	return ts.metadata
}
