// pkg/geoparse/parse_test.go
package geoparse

import (
	"testing"

	"github.com/tilegen/tilegen/pkg/geo"
)

func TestParseOriginPoint(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {"name": "origin"}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Geometry.Type != GeometryPoint {
		t.Fatalf("expected Point geometry, got %v", f.Geometry.Type)
	}
	if f.Geometry.Point[0] != 0 || f.Geometry.Point[1] != 0 {
		t.Errorf("expected (0,0), got %v", f.Geometry.Point)
	}
	name, ok := f.Properties["name"]
	if !ok || name.Kind != PropertyString || name.String != "origin" {
		t.Errorf("expected name=origin, got %v", name)
	}
}

func TestParseSharedPropertyKeys(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 1]}, "properties": {"category": "a", "count": 3}},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [2, 2]}, "properties": {"category": "a", "count": 7}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}
	for i, want := range []int64{3, 7} {
		count := fc.Features[i].Properties["count"]
		if count.Kind != PropertyInt || count.Int != want {
			t.Errorf("feature %d: expected count=%d, got %v", i, want, count)
		}
	}
}

func TestParseAntimeridianLineString(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[179, 10], [-179, 10]]}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := fc.Features[0].Geometry.Line
	if len(line) != 2 {
		t.Fatalf("expected 2 points, got %d", len(line))
	}
	if line[0][0] != 179 || line[1][0] != -179 {
		t.Errorf("expected longitudes to cross the antimeridian unmodified, got %v", line)
	}
}

func TestParsePolygonClosingVertex(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ring := fc.Features[0].Geometry.Polygon[0]
	if len(ring) != 5 {
		t.Fatalf("expected the closing vertex preserved (5 points), got %d", len(ring))
	}
}

func TestParseUnsupportedGeometrySkipped(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "MultiPoint", "coordinates": [[0,0],[1,1]]}},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [5, 5]}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected MultiPoint feature to be silently skipped, got %d features", len(fc.Features))
	}
	if fc.Features[0].Geometry.Point[0] != 5 {
		t.Errorf("expected surviving feature to be the Point at (5,5), got %v", fc.Features[0].Geometry.Point)
	}
}

func TestParseNullGeometrySkipped(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": null},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 1]}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected null-geometry feature skipped, got %d features", len(fc.Features))
	}
}

func TestParseMalformedPolygonRing(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1]]]}}
		]
	}`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected a ParseError for an unclosed ring with fewer than 4 points")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.FeatureIndex != 0 {
		t.Errorf("expected FeatureIndex 0, got %d", pe.FeatureIndex)
	}
}

func TestParseWrongRootType(t *testing.T) {
	_, err := Parse([]byte(`{"type": "Feature", "features": []}`))
	if err == nil {
		t.Fatal("expected a ParseError for the wrong root type")
	}
}

func TestParseMissingFeaturesArray(t *testing.T) {
	_, err := Parse([]byte(`{"type": "FeatureCollection"}`))
	if err == nil {
		t.Fatal("expected a ParseError for a missing features array")
	}
}

func TestParseEmptyFeatureCollection(t *testing.T) {
	fc, err := Parse([]byte(`{"type": "FeatureCollection", "features": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 0 {
		t.Errorf("expected 0 features, got %d", len(fc.Features))
	}
	if fc.Bound != geo.DefaultBound {
		t.Errorf("expected the default world bound for an empty collection, got %v", fc.Bound)
	}
}

func TestParseLargeIntegerProperty(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [0,0]}, "properties": {"big": 123456789012345, "huge": 1e30, "frac": 1.5}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	props := fc.Features[0].Properties
	if props["big"].Kind != PropertyInt || props["big"].Int != 123456789012345 {
		t.Errorf("expected big to be an int, got %v", props["big"])
	}
	if props["huge"].Kind != PropertyFloat {
		t.Errorf("expected huge to widen to float, got %v", props["huge"])
	}
	if props["frac"].Kind != PropertyFloat || props["frac"].Float != 1.5 {
		t.Errorf("expected frac=1.5 float, got %v", props["frac"])
	}
}

func TestParseNoPropertiesObject(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [0,0]}}
		]
	}`
	fc, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.Features[0].Properties == nil || len(fc.Features[0].Properties) != 0 {
		t.Errorf("expected an empty, non-nil properties map, got %v", fc.Features[0].Properties)
	}
}
