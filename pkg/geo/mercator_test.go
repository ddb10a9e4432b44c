// pkg/geo/mercator_test.go - unit tests for Web Mercator projection
package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestToMercatorOrigin(t *testing.T) {
	p := ToMercator(0, 0)
	if math.Abs(p[0]-0.5) > 1e-12 || math.Abs(p[1]-0.5) > 1e-12 {
		t.Errorf("expected (0.5, 0.5), got %v", p)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		lon, lat float64
	}{
		{0, 0},
		{-180, 0},
		{180, 0},
		{0, 85.05112878},
		{0, -85.05112878},
		{170, 42.5},
		{-73.9, 40.7},
	}

	for _, tt := range tests {
		p := ToMercator(tt.lon, tt.lat)
		lon, lat := FromMercator(p)
		if math.Abs(lon-tt.lon) > 1e-9 {
			t.Errorf("lon round trip: want %v, got %v", tt.lon, lon)
		}
		if math.Abs(lat-tt.lat) > 1e-9 {
			t.Errorf("lat round trip: want %v, got %v", tt.lat, lat)
		}
	}
}

func TestToMercatorClampsLatitude(t *testing.T) {
	p := ToMercator(0, 90)
	p2 := ToMercator(0, MaxLat)
	if p != p2 {
		t.Errorf("expected latitude to clamp to MaxLat, got %v want %v", p, p2)
	}
}

func TestClampTileIndex(t *testing.T) {
	tests := []struct {
		name string
		idx  uint32
		z    uint32
		want uint32
	}{
		{"in range zoom0", 0, 0, 0},
		{"in range zoom1", 1, 1, 1},
		{"overflow zoom1", 2, 1, 1},
		{"overflow zoom2", 4, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampTileIndex(tt.idx, tt.z)
			if got != tt.want {
				t.Errorf("ClampTileIndex(%v, %d) = %d, want %d", tt.idx, tt.z, got, tt.want)
			}
		})
	}
}

func TestTileAt(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		z        uint32
		wantX    uint32
		wantY    uint32
	}{
		{"origin zoom1", 0, 0, 1, 1, 1},
		{"upper lon edge does not overflow", 180, 0, 1, 1, 1},
		{"upper lat edge does not overflow", 0, MaxLat, 1, 1, 0},
		{"lower edges", -180, MinLat, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TileAt(tt.lon, tt.lat, tt.z)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("TileAt(%v, %v, %d) = (%d, %d), want (%d, %d)", tt.lon, tt.lat, tt.z, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestToTileLocal(t *testing.T) {
	p := orb.Point{0.5, 0.5}
	ix, iy := ToTileLocal(p, 1, 1, 1)
	if ix != 0 || iy != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", ix, iy)
	}
}

func TestClampTileLocal(t *testing.T) {
	if ClampTileLocal(-5) != 0 {
		t.Error("expected negative values to clamp to 0")
	}
	if ClampTileLocal(TileExtent+5) != TileExtent-1 {
		t.Error("expected overflow to clamp to TileExtent-1")
	}
}
