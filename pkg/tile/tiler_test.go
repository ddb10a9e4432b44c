// pkg/tile/tiler_test.go
package tile

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tilegen/tilegen/pkg/geoparse"
)

func pointFeature(lon, lat float64) geoparse.Feature {
	return geoparse.Feature{
		Geometry:   geoparse.Geometry{Type: geoparse.GeometryPoint, Point: orb.Point{lon, lat}},
		Properties: map[string]geoparse.PropertyValue{},
	}
}

func TestBuildTilesOriginPointTieBreak(t *testing.T) {
	fc := &geoparse.FeatureCollection{Features: []geoparse.Feature{pointFeature(0, 0)}}
	buckets, err := BuildTiles(fc, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 tiles (0/0/0 and 1/1/1), got %d", len(buckets))
	}
	if buckets[0].Coord != (Coordinate{Z: 0, X: 0, Y: 0}) {
		t.Errorf("expected first tile 0/0/0, got %s", buckets[0].Coord)
	}
	if buckets[1].Coord != (Coordinate{Z: 1, X: 1, Y: 1}) {
		t.Errorf("expected second tile 1/1/1, got %s", buckets[1].Coord)
	}
}

func TestBuildTilesLineStringCoverage(t *testing.T) {
	fc := &geoparse.FeatureCollection{
		Features: []geoparse.Feature{
			{
				Geometry: geoparse.Geometry{
					Type: geoparse.GeometryLineString,
					Line: orb.LineString{{170, 0}, {179, 0}},
				},
				Properties: map[string]geoparse.PropertyValue{},
			},
		},
	}
	buckets, err := BuildTiles(fc, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected exactly 1 tile at zoom 2, got %d", len(buckets))
	}
}

func TestBuildTilesInvalidZoomRange(t *testing.T) {
	fc := &geoparse.FeatureCollection{Features: []geoparse.Feature{pointFeature(0, 0)}}
	_, err := BuildTiles(fc, 3, 2)
	if err == nil {
		t.Fatal("expected a RangeError when min_zoom > max_zoom")
	}
	if _, ok := err.(*RangeError); !ok {
		t.Fatalf("expected *RangeError, got %T", err)
	}
}

func TestBuildTilesZoomAboveMax(t *testing.T) {
	fc := &geoparse.FeatureCollection{Features: []geoparse.Feature{pointFeature(0, 0)}}
	_, err := BuildTiles(fc, 0, 16)
	if err == nil {
		t.Fatal("expected a RangeError when max_zoom exceeds 15")
	}
}

func TestBuildTilesPreservesInputOrder(t *testing.T) {
	fc := &geoparse.FeatureCollection{
		Features: []geoparse.Feature{
			pointFeature(-10, -10),
			pointFeature(-5, -5),
		},
	}
	buckets, err := BuildTiles(fc, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected both points in the single zoom-0 tile, got %d tiles", len(buckets))
	}
	if len(buckets[0].Features) != 2 {
		t.Fatalf("expected 2 features in the tile, got %d", len(buckets[0].Features))
	}
	for i, feat := range fc.Features {
		want := Project(feat.Geometry).Point
		if got := buckets[0].Features[i].Geometry.Point; got != want {
			t.Errorf("feature %d: expected input order preserved (%v), got %v", i, want, got)
		}
	}
}

func TestBuildTilesMultipleZoomsEmitAscending(t *testing.T) {
	fc := &geoparse.FeatureCollection{Features: []geoparse.Feature{pointFeature(45, 45)}}
	buckets, err := BuildTiles(fc, 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 4 {
		t.Fatalf("expected one tile per zoom level, got %d", len(buckets))
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i].Coord.Z <= buckets[i-1].Coord.Z {
			t.Errorf("expected ascending zoom order, got %s after %s", buckets[i].Coord, buckets[i-1].Coord)
		}
	}
}
