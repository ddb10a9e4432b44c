// pkg/tile/tiler.go - per-zoom assignment of features to covering tiles
package tile

import (
	"sort"

	"github.com/tilegen/tilegen/pkg/geo"
	"github.com/tilegen/tilegen/pkg/geoparse"
)

const MaxZoom = 15

// Feature is a geometry, already projected to normalized Mercator space,
// paired with the property map it carries into every tile it covers.
type Feature struct {
	Geometry   Projected
	Properties map[string]geoparse.PropertyValue
}

// Bucket is the set of features assigned to one tile, in input order.
type Bucket struct {
	Coord    Coordinate
	Features []Feature
}

type bucketKey struct {
	z, x, y uint32
}

// BuildTiles assigns every feature in fc to each tile its bounding box
// intersects, for every zoom in [minZoom, maxZoom]. Lines and polygons are
// duplicated whole into every covering tile; no clipping happens here. The
// result is ordered (z, x, y) ascending.
func BuildTiles(fc *geoparse.FeatureCollection, minZoom, maxZoom uint32) ([]Bucket, error) {
	if minZoom > maxZoom {
		return nil, &RangeError{MinZoom: minZoom, MaxZoom: maxZoom, Reason: "min_zoom must not exceed max_zoom"}
	}
	if maxZoom > MaxZoom {
		return nil, &RangeError{MinZoom: minZoom, MaxZoom: maxZoom, Reason: "max_zoom must not exceed 15"}
	}

	buckets := make(map[bucketKey][]Feature)

	for _, feat := range fc.Features {
		proj := Project(feat.Geometry)
		bound := feat.Geometry.Bound()

		for z := minZoom; z <= maxZoom; z++ {
			x1, y1 := geo.TileAt(bound.Min[0], bound.Min[1], z)
			x2, y2 := geo.TileAt(bound.Max[0], bound.Max[1], z)

			minX, maxX := x1, x2
			if minX > maxX {
				minX, maxX = maxX, minX
			}
			// Latitude grows northward but tile Y grows southward, so the
			// bound's min (south) latitude maps to the larger tile Y.
			minY, maxY := y2, y1
			if minY > maxY {
				minY, maxY = maxY, minY
			}

			for x := minX; x <= maxX; x++ {
				for y := minY; y <= maxY; y++ {
					k := bucketKey{z, x, y}
					buckets[k] = append(buckets[k], Feature{Geometry: proj, Properties: feat.Properties})
				}
			}
		}
	}

	keys := make([]bucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].z != keys[j].z {
			return keys[i].z < keys[j].z
		}
		if keys[i].x != keys[j].x {
			return keys[i].x < keys[j].x
		}
		return keys[i].y < keys[j].y
	})

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bucket{
			Coord:    Coordinate{Z: k.z, X: k.x, Y: k.y},
			Features: buckets[k],
		})
	}
	return out, nil
}
