// pkg/geoparse/parse.go - GeoJSON FeatureCollection decoding
package geoparse

import (
	"bytes"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/tilegen/tilegen/pkg/geo"
)

type rawRoot struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

type rawFeature struct {
	Type       string               `json:"type"`
	Geometry   *rawGeometryEnvelope `json:"geometry"`
	Properties json.RawMessage      `json:"properties"`
}

type rawGeometryEnvelope struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Parse decodes a GeoJSON FeatureCollection. It returns a *ParseError for
// invalid JSON, a wrong root type, a missing features array, or malformed
// geometry shape -- never a partial collection.
func Parse(data []byte) (*FeatureCollection, error) {
	var root rawRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, newRootError("invalid JSON", err)
	}
	if root.Type != "FeatureCollection" {
		return nil, newRootError("root type must be FeatureCollection, got "+quoteOrEmpty(root.Type), nil)
	}
	if root.Features == nil {
		return nil, newRootError("missing features array", nil)
	}

	var tracker geo.BoundTracker
	features := make([]Feature, 0, len(root.Features))

	for i, rawFeat := range root.Features {
		var rf rawFeature
		if err := json.Unmarshal(rawFeat, &rf); err != nil {
			return nil, newFeatureError(i, "malformed feature object", err)
		}
		if rf.Type != "Feature" {
			return nil, newFeatureError(i, "feature type must be Feature, got "+quoteOrEmpty(rf.Type), nil)
		}
		if rf.Geometry == nil {
			continue // null geometry: skipped, not an error
		}

		geom, ok, err := decodeGeometry(rf.Geometry, i)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue // unsupported geometry type: skipped, not an error
		}

		props, err := decodeProperties(rf.Properties)
		if err != nil {
			return nil, newFeatureError(i, "malformed properties object", err)
		}

		b := geom.Bound()
		tracker.Extend(b.Min[0], b.Min[1])
		tracker.Extend(b.Max[0], b.Max[1])

		features = append(features, Feature{Geometry: geom, Properties: props})
	}

	bound := tracker.Bound()
	return &FeatureCollection{
		Features: features,
		Bound:    bound,
		Center:   geo.Center(bound),
	}, nil
}

// decodeGeometry returns (geometry, true, nil) for a supported shape,
// (zero, false, nil) for an unsupported geometry type (silently skipped),
// or (zero, false, err) for a malformed coordinate shape.
func decodeGeometry(g *rawGeometryEnvelope, featureIndex int) (Geometry, bool, error) {
	switch g.Type {
	case "Point":
		coords, err := decodeFloats(g.Coordinates)
		if err != nil || len(coords) < 2 {
			return Geometry{}, false, newFeatureError(featureIndex, "Point coordinates must be [lon, lat]", err)
		}
		return Geometry{Type: GeometryPoint, Point: orb.Point{coords[0], coords[1]}}, true, nil

	case "LineString":
		rings, err := decodeFloatRows(g.Coordinates)
		if err != nil {
			return Geometry{}, false, newFeatureError(featureIndex, "malformed LineString coordinates", err)
		}
		if len(rings) < 2 {
			return Geometry{}, false, newFeatureError(featureIndex, "LineString must have at least 2 points", nil)
		}
		line := make(orb.LineString, len(rings))
		for i, c := range rings {
			if len(c) < 2 {
				return Geometry{}, false, newFeatureError(featureIndex, "LineString point must have at least 2 values", nil)
			}
			line[i] = orb.Point{c[0], c[1]}
		}
		return Geometry{Type: GeometryLineString, Line: line}, true, nil

	case "Polygon":
		rawRings, err := decodeFloatGrids(g.Coordinates)
		if err != nil {
			return Geometry{}, false, newFeatureError(featureIndex, "malformed Polygon coordinates", err)
		}
		poly := make(orb.Polygon, 0, len(rawRings))
		for _, rawRing := range rawRings {
			if len(rawRing) < 4 {
				return Geometry{}, false, newFeatureError(featureIndex, "Polygon ring must have at least 4 points", nil)
			}
			first, last := rawRing[0], rawRing[len(rawRing)-1]
			if len(first) < 2 || len(last) < 2 || first[0] != last[0] || first[1] != last[1] {
				return Geometry{}, false, newFeatureError(featureIndex, "Polygon ring must be closed (first == last)", nil)
			}
			ring := make(orb.Ring, len(rawRing))
			for i, c := range rawRing {
				if len(c) < 2 {
					return Geometry{}, false, newFeatureError(featureIndex, "Polygon ring point must have at least 2 values", nil)
				}
				ring[i] = orb.Point{c[0], c[1]}
			}
			poly = append(poly, ring)
		}
		return Geometry{Type: GeometryPolygon, Polygon: poly}, true, nil

	default:
		return Geometry{}, false, nil
	}
}

func decodeFloats(raw json.RawMessage) ([]float64, error) {
	var out []float64
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFloatRows(raw json.RawMessage) ([][]float64, error) {
	var out [][]float64
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFloatGrids(raw json.RawMessage) ([][][]float64, error) {
	var out [][][]float64
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeProperties converts a raw "properties" object into the tagged
// PropertyValue map. An absent or null properties object decodes to an
// empty map. Numbers with no fractional part and magnitude within signed
// 64-bit range become PropertyInt; all other numbers become PropertyFloat.
// Arrays and nested objects are dropped silently.
func decodeProperties(raw json.RawMessage) (map[string]PropertyValue, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return map[string]PropertyValue{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic map[string]interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}

	out := make(map[string]PropertyValue, len(generic))
	for key, v := range generic {
		switch val := v.(type) {
		case nil:
			out[key] = PropertyValue{Kind: PropertyNull}
		case bool:
			out[key] = PropertyValue{Kind: PropertyBool, Bool: val}
		case string:
			out[key] = PropertyValue{Kind: PropertyString, String: val}
		case json.Number:
			out[key] = convertNumber(val)
		default:
			// arrays and nested objects: dropped silently.
		}
	}
	return out, nil
}

func convertNumber(n json.Number) PropertyValue {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
			return PropertyValue{Kind: PropertyInt, Int: iv}
		}
	}
	f, _ := strconv.ParseFloat(s, 64)
	return PropertyValue{Kind: PropertyFloat, Float: f}
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "<missing>"
	}
	return strconv.Quote(s)
}
