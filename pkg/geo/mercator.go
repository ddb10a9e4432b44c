// pkg/geo/mercator.go - WGS84 <-> normalized Web Mercator projection
package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const (
	// MinLat and MaxLat are the Web Mercator latitude clamp bounds (EPSG:3857).
	MinLat = -85.05112878
	MaxLat = 85.05112878
	MinLon = -180.0
	MaxLon = 180.0
)

// clamp restricts v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToMercator projects a WGS84 (lon, lat) coordinate into normalized Web
// Mercator space, where both axes range over [0, 1] and y grows southward.
// Latitudes outside [MinLat, MaxLat] are clamped before projection.
func ToMercator(lon, lat float64) orb.Point {
	lat = clamp(lat, MinLat, MaxLat)
	lon = clamp(lon, MinLon, MaxLon)

	x := (lon + 180.0) / 360.0

	latRad := lat * math.Pi / 180.0
	y := (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0

	return orb.Point{x, y}
}

// FromMercator is the inverse of ToMercator. It is exact for points produced
// by ToMercator from inputs inside the clamp range (round-trip error <= 1e-9).
func FromMercator(p orb.Point) (lon, lat float64) {
	lon = p[0]*360.0 - 180.0

	n := math.Pi - 2.0*math.Pi*p[1]
	lat = 180.0 / math.Pi * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))

	return lon, lat
}

// TileExtent is the number of integer units per tile axis in MVT geometry
// coordinates, per the MVT 2.1 specification.
const TileExtent = 4096

// ToTileLocal maps a normalized Web Mercator point to integer tile-local
// coordinates for the tile (z, x, y), using the fixed TileExtent grid. The
// result is not yet clamped to [0, TileExtent) -- callers that need clipped
// coordinates (MVT command-stream emission) must clamp explicitly.
func ToTileLocal(p orb.Point, z, x, y uint32) (ix, iy int64) {
	n := float64(uint64(1) << z)
	ix = int64(math.Round((p[0]*n - float64(x)) * TileExtent))
	iy = int64(math.Round((p[1]*n - float64(y)) * TileExtent))
	return ix, iy
}

// ClampTileLocal clamps a tile-local integer coordinate into [0, TileExtent).
func ClampTileLocal(v int64) int64 {
	if v < 0 {
		return 0
	}
	if v > TileExtent-1 {
		return TileExtent - 1
	}
	return v
}

// TileCount returns 2^z, the number of tiles per axis at zoom z.
func TileCount(z uint32) uint32 {
	return uint32(1) << z
}

// TileAt returns the tile (x, y) index at zoom z covering a WGS84 point,
// using orb/maptile's slippy-tile fraction math instead of hand-rolling
// the same projection a second time.
func TileAt(lon, lat float64, z uint32) (x, y uint32) {
	lat = clamp(lat, MinLat, MaxLat)
	lon = clamp(lon, MinLon, MaxLon)
	t := maptile.At(orb.Point{lon, lat}, maptile.Zoom(z))
	return ClampTileIndex(t.X, z), ClampTileIndex(t.Y, z)
}

// ClampTileIndex clamps a raw tile axis index into [0, 2^z). maptile.At
// truncates its fraction with a plain cast, which overflows by one when a
// coordinate lands exactly on the grid's upper lon/lat edge (e.g. lon ==
// 180); this ties that edge case off to the lower-index (last) tile
// instead of returning an index that doesn't exist.
func ClampTileIndex(idx uint32, z uint32) uint32 {
	count := TileCount(z)
	if idx >= count {
		return count - 1
	}
	return idx
}
