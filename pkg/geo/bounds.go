// pkg/geo/bounds.go - bounding box and center helpers for WGS84 coordinates
package geo

import "github.com/paulmach/orb"

// DefaultBound is the bound assigned to an empty feature collection.
var DefaultBound = orb.Bound{
	Min: orb.Point{MinLon, MinLat},
	Max: orb.Point{MaxLon, MaxLat},
}

// BoundTracker accumulates a bounding box over a stream of WGS84 points.
type BoundTracker struct {
	bound orb.Bound
	seen  bool
}

// Extend grows the tracked bound to include (lon, lat).
func (t *BoundTracker) Extend(lon, lat float64) {
	p := orb.Point{lon, lat}
	if !t.seen {
		t.bound = orb.Bound{Min: p, Max: p}
		t.seen = true
		return
	}
	t.bound = t.bound.Union(orb.Bound{Min: p, Max: p})
}

// Bound returns the accumulated bound, or DefaultBound if nothing was
// extended.
func (t *BoundTracker) Bound() orb.Bound {
	if !t.seen {
		return DefaultBound
	}
	return t.bound
}

// Center returns the midpoint of a bound.
func Center(b orb.Bound) orb.Point {
	return orb.Point{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
	}
}
