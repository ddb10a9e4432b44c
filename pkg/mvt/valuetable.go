// pkg/mvt/valuetable.go - per-layer key/value deduplication tables
package mvt

import (
	"math"

	"github.com/tilegen/tilegen/pkg/geoparse"
)

// KeyTable is the append-only, insertion-ordered, unique string table an
// MVT layer stores its property keys in.
type KeyTable struct {
	keys  []string
	index map[string]int
}

func newKeyTable() *KeyTable {
	return &KeyTable{index: make(map[string]int)}
}

// Intern returns the table index for k, appending it if not already present.
func (t *KeyTable) Intern(k string) int {
	if idx, ok := t.index[k]; ok {
		return idx
	}
	idx := len(t.keys)
	t.keys = append(t.keys, k)
	t.index[k] = idx
	return idx
}

// Keys returns the table in insertion order.
func (t *KeyTable) Keys() []string {
	return t.keys
}

// valueKey is a comparable projection of geoparse.PropertyValue suitable
// as a map key, substituting the float bits for the float itself so that
// NaN deduplicates against any NaN.
type valueKey struct {
	kind  geoparse.PropertyKind
	b     bool
	i     int64
	u     uint64
	fbits uint64
	s     string
}

func keyFor(v geoparse.PropertyValue) valueKey {
	return valueKey{
		kind:  v.Kind,
		b:     v.Bool,
		i:     v.Int,
		u:     v.Uint,
		fbits: math.Float64bits(v.Float),
		s:     v.String,
	}
}

// ValueTable is the append-only, insertion-ordered, unique value table an
// MVT layer stores its property values in.
type ValueTable struct {
	values []geoparse.PropertyValue
	index  map[valueKey]int
}

func newValueTable() *ValueTable {
	return &ValueTable{index: make(map[valueKey]int)}
}

// Intern returns the table index for v, appending it if no equal value
// (per geoparse.PropertyValue.Equal) is already present.
func (t *ValueTable) Intern(v geoparse.PropertyValue) int {
	k := keyFor(v)
	if idx, ok := t.index[k]; ok {
		return idx
	}
	idx := len(t.values)
	t.values = append(t.values, v)
	t.index[k] = idx
	return idx
}

// Values returns the table in insertion order.
func (t *ValueTable) Values() []geoparse.PropertyValue {
	return t.values
}
