// pkg/mvt/commands_test.go
package mvt

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tilegen/tilegen/pkg/geoparse"
	"github.com/tilegen/tilegen/pkg/tile"
)

func TestBuildCommandsPointMoveToOnly(t *testing.T) {
	g := tile.Projected{Type: geoparse.GeometryPoint, Point: orb.Point{0.5, 0.5}}
	cmds, gtype, err := buildCommands(g, 1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gtype != GeomPoint {
		t.Fatalf("expected GeomPoint, got %v", gtype)
	}
	if len(cmds) != 3 {
		t.Fatalf("expected MoveTo header plus 2 params, got %d entries: %v", len(cmds), cmds)
	}
	if cmds[0] != commandHeader(cmdMoveTo, 1) {
		t.Errorf("expected MoveTo(1) header, got %d", cmds[0])
	}
}

func TestBuildCommandsPolygonDropsClosingVertex(t *testing.T) {
	ring := orb.Ring{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}
	g := tile.Projected{Type: geoparse.GeometryPolygon, Polygon: orb.Polygon{ring}}
	cmds, gtype, err := buildCommands(g, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gtype != GeomPolygon {
		t.Fatalf("expected GeomPolygon, got %v", gtype)
	}
	// MoveTo(1) + 2 params, LineTo(3) + 6 params, ClosePath(1): 1+2+1+6+1 = 11
	if len(cmds) != 11 {
		t.Fatalf("expected 11 command stream entries, got %d: %v", len(cmds), cmds)
	}
	if cmds[0] != commandHeader(cmdMoveTo, 1) {
		t.Errorf("expected MoveTo(1) header first, got %d", cmds[0])
	}
	if cmds[3] != commandHeader(cmdLineTo, 3) {
		t.Errorf("expected LineTo(3) header at index 3, got %d", cmds[3])
	}
	if cmds[len(cmds)-1] != commandHeader(cmdClosePath, 1) {
		t.Errorf("expected ClosePath(1) as the final command, got %d", cmds[len(cmds)-1])
	}
}

func TestBuildCommandsLineStringDedupConsecutive(t *testing.T) {
	// Two tile-local-identical points in a row must collapse to one move.
	line := orb.LineString{{0.1, 0.1}, {0.1, 0.1}, {0.2, 0.2}}
	g := tile.Projected{Type: geoparse.GeometryLineString, Line: line}
	cmds, gtype, err := buildCommands(g, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gtype != GeomLineString {
		t.Fatalf("expected GeomLineString, got %v", gtype)
	}
	// MoveTo(1) + 2 params, LineTo(1) + 2 params: 1+2+1+2 = 6
	if len(cmds) != 6 {
		t.Fatalf("expected duplicate consecutive point collapsed, got %d entries: %v", len(cmds), cmds)
	}
}

func TestBuildCommandsZeroAreaPolygonRingDropped(t *testing.T) {
	// A degenerate ring (all points on a line) has zero signed area.
	ring := orb.Ring{{0, 0}, {0, 0.5}, {0, 1}, {0, 0}}
	g := tile.Projected{Type: geoparse.GeometryPolygon, Polygon: orb.Polygon{ring}}
	cmds, _, err := buildCommands(g, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 0 {
		t.Errorf("expected zero-area ring dropped entirely, got %v", cmds)
	}
}

func TestZigzag32RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 4095, -4095, 2147483647, -2147483648}
	for _, v := range cases {
		z := zigzag32(v)
		// zig-zag decode: (z >> 1) ^ -(z & 1)
		got := int32(z>>1) ^ -int32(z&1)
		if got != v {
			t.Errorf("zigzag32(%d) round trip got %d", v, got)
		}
	}
}
