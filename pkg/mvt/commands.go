// pkg/mvt/commands.go - MVT geometry command stream construction
package mvt

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/tilegen/tilegen/pkg/geo"
	"github.com/tilegen/tilegen/pkg/geoparse"
	"github.com/tilegen/tilegen/pkg/tile"
)

const (
	cmdMoveTo    = 1
	cmdLineTo    = 2
	cmdClosePath = 7
)

// GeomType mirrors the MVT Feature.type enum.
type GeomType uint32

const (
	GeomUnknown    GeomType = 0
	GeomPoint      GeomType = 1
	GeomLineString GeomType = 2
	GeomPolygon    GeomType = 3
)

func commandHeader(id, count int) uint32 {
	return uint32((id & 0x7) | (count << 3))
}

// cursor tracks the last emitted tile-local position within one feature's
// geometry. MVT command parameters are deltas from this position.
type cursor struct {
	x, y int64
}

// deltaTo returns the zig-zag encoded (dx, dy) to move the cursor to
// (ix, iy), advancing the cursor. It returns EncodeError CoordinateOverflow
// if either delta does not fit in a signed 32-bit integer.
func (c *cursor) deltaTo(ix, iy int64) (dx, dy uint32, err error) {
	rawDx := ix - c.x
	rawDy := iy - c.y
	if rawDx > math.MaxInt32 || rawDx < math.MinInt32 || rawDy > math.MaxInt32 || rawDy < math.MinInt32 {
		return 0, 0, &EncodeError{Kind: CoordinateOverflow, Reason: "geometry delta exceeds signed 32-bit range"}
	}
	c.x, c.y = ix, iy
	return zigzag32(int32(rawDx)), zigzag32(int32(rawDy)), nil
}

func zigzag32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

type tilePoint struct {
	ix, iy int64
}

func projectClamped(p orb.Point, z, x, y uint32) tilePoint {
	ix, iy := geo.ToTileLocal(p, z, x, y)
	return tilePoint{ix: geo.ClampTileLocal(ix), iy: geo.ClampTileLocal(iy)}
}

// buildCommands turns a projected geometry already assigned to tile (z,x,y)
// into an MVT command stream. It returns a nil stream (not an error) when
// the geometry degenerates to nothing emittable
// -- a line collapsing to a single point after duplicate removal, or a
// polygon whose every ring has zero signed area.
func buildCommands(g tile.Projected, z, x, y uint32) ([]uint32, GeomType, error) {
	switch g.Type {
	case geoparse.GeometryPoint:
		return buildPointCommands(g.Point, z, x, y)
	case geoparse.GeometryLineString:
		return buildLineCommands(g.Line, z, x, y)
	case geoparse.GeometryPolygon:
		return buildPolygonCommands(g.Polygon, z, x, y)
	default:
		return nil, GeomUnknown, &EncodeError{Kind: InternalInvariant, Reason: "unknown geometry type reached the encoder"}
	}
}

func buildPointCommands(p orb.Point, z, x, y uint32) ([]uint32, GeomType, error) {
	tp := projectClamped(p, z, x, y)
	var c cursor
	dx, dy, err := c.deltaTo(tp.ix, tp.iy)
	if err != nil {
		return nil, GeomPoint, err
	}
	return []uint32{commandHeader(cmdMoveTo, 1), dx, dy}, GeomPoint, nil
}

func buildLineCommands(line orb.LineString, z, x, y uint32) ([]uint32, GeomType, error) {
	points := dedupConsecutive(projectAll(line, z, x, y))
	if len(points) < 2 {
		return nil, GeomLineString, nil
	}

	var c cursor
	cmds := make([]uint32, 0, 3+3*(len(points)-1))

	dx, dy, err := c.deltaTo(points[0].ix, points[0].iy)
	if err != nil {
		return nil, GeomLineString, err
	}
	cmds = append(cmds, commandHeader(cmdMoveTo, 1), dx, dy)

	lineTo := make([]uint32, 0, 2*(len(points)-1))
	for _, p := range points[1:] {
		dx, dy, err := c.deltaTo(p.ix, p.iy)
		if err != nil {
			return nil, GeomLineString, err
		}
		lineTo = append(lineTo, dx, dy)
	}
	cmds = append(cmds, commandHeader(cmdLineTo, len(points)-1))
	cmds = append(cmds, lineTo...)
	return cmds, GeomLineString, nil
}

func buildPolygonCommands(rings orb.Polygon, z, x, y uint32) ([]uint32, GeomType, error) {
	var c cursor
	var cmds []uint32

	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		// Drop the duplicated closing vertex the parser guarantees is present.
		open := ring[:len(ring)-1]
		points := dedupConsecutive(projectAll(open, z, x, y))
		if len(points) < 3 {
			continue
		}
		if signedArea(points) == 0 {
			continue
		}

		dx, dy, err := c.deltaTo(points[0].ix, points[0].iy)
		if err != nil {
			return nil, GeomPolygon, err
		}
		cmds = append(cmds, commandHeader(cmdMoveTo, 1), dx, dy)

		lineTo := make([]uint32, 0, 2*(len(points)-1))
		for _, p := range points[1:] {
			dx, dy, err := c.deltaTo(p.ix, p.iy)
			if err != nil {
				return nil, GeomPolygon, err
			}
			lineTo = append(lineTo, dx, dy)
		}
		cmds = append(cmds, commandHeader(cmdLineTo, len(points)-1))
		cmds = append(cmds, lineTo...)
		cmds = append(cmds, commandHeader(cmdClosePath, 1))
	}

	if len(cmds) == 0 {
		return nil, GeomPolygon, nil
	}
	return cmds, GeomPolygon, nil
}

func projectAll(pts []orb.Point, z, x, y uint32) []tilePoint {
	out := make([]tilePoint, len(pts))
	for i, p := range pts {
		out[i] = projectClamped(p, z, x, y)
	}
	return out
}

func dedupConsecutive(pts []tilePoint) []tilePoint {
	if len(pts) == 0 {
		return pts
	}
	out := make([]tilePoint, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if p.ix == last.ix && p.iy == last.iy {
			continue
		}
		out = append(out, p)
	}
	return out
}

// signedArea computes twice the signed area of a ring via the shoelace
// formula on tile-local integer coordinates, used only to test for zero.
func signedArea(pts []tilePoint) int64 {
	var sum int64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].ix*pts[j].iy - pts[j].ix*pts[i].iy
	}
	return sum
}
