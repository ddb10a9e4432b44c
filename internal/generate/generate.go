// internal/generate/generate.go - the core pipeline entry point
package generate

import (
	"sort"

	"github.com/tilegen/tilegen/pkg/geoparse"
	"github.com/tilegen/tilegen/pkg/mvt"
	"github.com/tilegen/tilegen/pkg/tile"
)

// GenerateTiles runs the full Parser -> Projector -> Tiler -> Encoder
// pipeline synchronously and single-threaded. Preconditions (0 <= minZoom
// <= maxZoom <= 15 is enforced by the Tiler and surfaces as a RangeError;
// layerName non-emptiness is a caller contract validated at the CLI
// layer, not here).
//
// A collection that parses successfully but contains zero usable features
// is not an error: it returns a TileSet with Count() == 0 and the default
// world bounds/center.
func GenerateTiles(geojsonBytes []byte, minZoom, maxZoom uint32, layerName string) (*TileSet, error) {
	fc, err := geoparse.Parse(geojsonBytes)
	if err != nil {
		return nil, err
	}

	buckets, err := tile.BuildTiles(fc, minZoom, maxZoom)
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(buckets))
	for _, bucket := range buckets {
		data, err := mvt.EncodeTile(bucket, layerName)
		if err != nil {
			return nil, err
		}
		if data == nil {
			continue // empty layer: no artifact emitted for this tile
		}
		artifacts = append(artifacts, Artifact{
			Coord: bucket.Coord,
			Path:  bucket.Coord.Path(),
			Data:  data,
		})
	}

	return &TileSet{
		artifacts: artifacts,
		metadata: Metadata{
			MinZoom:        minZoom,
			MaxZoom:        maxZoom,
			LayerName:      layerName,
			Bounds:         [4]float64{fc.Bound.Min[0], fc.Bound.Min[1], fc.Bound.Max[0], fc.Bound.Max[1]},
			Center:         [2]float64{fc.Center[0], fc.Center[1]},
			FeatureCount:   len(fc.Features),
			AttributeNames: collectAttributeNames(fc),
		},
	}, nil
}

// collectAttributeNames returns the union of property keys across every
// parsed feature, sorted, for the metadata.json vector_layers summary.
func collectAttributeNames(fc *geoparse.FeatureCollection) []string {
	seen := make(map[string]struct{})
	for _, feat := range fc.Features {
		for k := range feat.Properties {
			seen[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
