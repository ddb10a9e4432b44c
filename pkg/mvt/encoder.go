// pkg/mvt/encoder.go - MVT tile serialization
package mvt

import (
	"math"
	"sort"

	"github.com/tilegen/tilegen/pkg/geo"
	"github.com/tilegen/tilegen/pkg/geoparse"
	"github.com/tilegen/tilegen/pkg/tile"
)

const (
	tileFieldLayers = 3

	layerFieldName    = 1
	layerFieldFeature = 2
	layerFieldKey     = 3
	layerFieldValue   = 4
	layerFieldExtent  = 5
	layerFieldVersion = 15

	featureFieldID       = 1
	featureFieldTags     = 2
	featureFieldType     = 3
	featureFieldGeometry = 4

	valueFieldString = 1
	valueFieldFloat  = 2
	valueFieldDouble = 3
	valueFieldInt    = 4
	valueFieldUint   = 5
	valueFieldSint   = 6
	valueFieldBool   = 7

	wireFixed64 = 1
	layerVersion = 2
)

// EncodeTile builds the serialized MVT bytes for one tile bucket. A nil,
// nil return means the tile's only layer ended up empty and no artifact
// should be emitted.
func EncodeTile(bucket tile.Bucket, layerName string) ([]byte, error) {
	layerBytes, nonEmpty, err := encodeLayer(bucket, layerName)
	if err != nil {
		return nil, err
	}
	if !nonEmpty {
		return nil, nil
	}
	return appendLengthDelimited(nil, tileFieldLayers, layerBytes), nil
}

func encodeLayer(bucket tile.Bucket, layerName string) ([]byte, bool, error) {
	keys := newKeyTable()
	values := newValueTable()

	n := float64(geo.TileCount(bucket.Coord.Z))
	tileMinX := float64(bucket.Coord.X) / n
	tileMaxX := float64(bucket.Coord.X+1) / n
	tileMinY := float64(bucket.Coord.Y) / n
	tileMaxY := float64(bucket.Coord.Y+1) / n

	var featureBytes [][]byte
	for _, feat := range bucket.Features {
		b := feat.Geometry.Bound()
		if b.Max[0] < tileMinX || b.Min[0] > tileMaxX || b.Max[1] < tileMinY || b.Min[1] > tileMaxY {
			continue
		}

		cmds, gtype, err := buildCommands(feat.Geometry, bucket.Coord.Z, bucket.Coord.X, bucket.Coord.Y)
		if err != nil {
			return nil, false, err
		}
		if len(cmds) == 0 {
			continue
		}

		tags := internTags(feat.Properties, keys, values)
		featureBytes = append(featureBytes, encodeFeature(tags, gtype, cmds))
	}

	if len(featureBytes) == 0 {
		return nil, false, nil
	}

	var buf []byte
	buf = appendStringField(buf, layerFieldName, layerName)
	for _, fb := range featureBytes {
		buf = appendLengthDelimited(buf, layerFieldFeature, fb)
	}
	for _, k := range keys.Keys() {
		buf = appendStringField(buf, layerFieldKey, k)
	}
	for _, v := range values.Values() {
		buf = appendLengthDelimited(buf, layerFieldValue, encodeValue(v))
	}
	buf = appendUvarintField(buf, layerFieldExtent, uint64(geo.TileExtent))
	buf = appendUvarintField(buf, layerFieldVersion, uint64(layerVersion))
	return buf, true, nil
}

// internTags interns a feature's properties into the shared key/value
// tables and returns the flat (key_index, value_index) tag sequence. Map
// keys are sorted before interning so that output is deterministic
// regardless of Go's randomized map iteration order.
func internTags(props map[string]geoparse.PropertyValue, keys *KeyTable, values *ValueTable) []uint32 {
	if len(props) == 0 {
		return nil
	}
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sort.Strings(names)

	tags := make([]uint32, 0, len(names)*2)
	for _, name := range names {
		ki := keys.Intern(name)
		vi := values.Intern(props[name])
		tags = append(tags, uint32(ki), uint32(vi))
	}
	return tags
}

func encodeFeature(tags []uint32, gtype GeomType, cmds []uint32) []byte {
	var pb []byte
	if len(tags) > 0 {
		var tagBuf []byte
		for _, t := range tags {
			tagBuf = appendUvarint(tagBuf, uint64(t))
		}
		pb = appendLengthDelimited(pb, featureFieldTags, tagBuf)
	}
	if gtype != GeomUnknown {
		pb = appendUvarintField(pb, featureFieldType, uint64(gtype))
	}
	if len(cmds) > 0 {
		var geomBuf []byte
		for _, c := range cmds {
			geomBuf = appendUvarint(geomBuf, uint64(c))
		}
		pb = appendLengthDelimited(pb, featureFieldGeometry, geomBuf)
	}
	return pb
}

func encodeValue(v geoparse.PropertyValue) []byte {
	switch v.Kind {
	case geoparse.PropertyBool:
		b := uint64(0)
		if v.Bool {
			b = 1
		}
		return appendUvarintField(nil, valueFieldBool, b)
	case geoparse.PropertyInt:
		return appendUvarintField(nil, valueFieldInt, uint64(v.Int))
	case geoparse.PropertyUint:
		return appendUvarintField(nil, valueFieldUint, v.Uint)
	case geoparse.PropertyFloat:
		buf := appendTag(nil, valueFieldDouble, wireFixed64)
		bits := math.Float64bits(v.Float)
		for i := 0; i < 8; i++ {
			buf = append(buf, byte(bits>>(8*i)))
		}
		return buf
	case geoparse.PropertyString:
		return appendStringField(nil, valueFieldString, v.String)
	default:
		return nil
	}
}
