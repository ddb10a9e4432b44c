// pkg/tile/project.go - projecting parsed geometry into normalized Mercator space
package tile

import (
	"github.com/paulmach/orb"
	"github.com/tilegen/tilegen/pkg/geo"
	"github.com/tilegen/tilegen/pkg/geoparse"
)

// Projected is a geometry expressed in normalized Web Mercator space
// ([0,1]^2, y growing southward) rather than WGS84 degrees. It carries the
// same tagged shape as geoparse.Geometry.
type Projected struct {
	Type    geoparse.GeometryType
	Point   orb.Point
	Line    orb.LineString
	Polygon orb.Polygon
}

// Bound computes the normalized-space bounding box of a projected geometry.
func (p Projected) Bound() orb.Bound {
	switch p.Type {
	case geoparse.GeometryPoint:
		return orb.Bound{Min: p.Point, Max: p.Point}
	case geoparse.GeometryLineString:
		return p.Line.Bound()
	case geoparse.GeometryPolygon:
		return p.Polygon.Bound()
	default:
		return orb.Bound{}
	}
}

// Project converts a WGS84 geometry to normalized Web Mercator space.
func Project(g geoparse.Geometry) Projected {
	switch g.Type {
	case geoparse.GeometryPoint:
		return Projected{Type: geoparse.GeometryPoint, Point: geo.ToMercator(g.Point[0], g.Point[1])}

	case geoparse.GeometryLineString:
		line := make(orb.LineString, len(g.Line))
		for i, pt := range g.Line {
			line[i] = geo.ToMercator(pt[0], pt[1])
		}
		return Projected{Type: geoparse.GeometryLineString, Line: line}

	case geoparse.GeometryPolygon:
		poly := make(orb.Polygon, len(g.Polygon))
		for i, ring := range g.Polygon {
			projected := make(orb.Ring, len(ring))
			for j, pt := range ring {
				projected[j] = geo.ToMercator(pt[0], pt[1])
			}
			poly[i] = projected
		}
		return Projected{Type: geoparse.GeometryPolygon, Polygon: poly}

	default:
		return Projected{}
	}
}
