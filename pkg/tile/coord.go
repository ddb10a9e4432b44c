// pkg/tile/coord.go - tile pyramid coordinates
package tile

import "fmt"

// Coordinate identifies a single tile in the pyramid. Z is the zoom level;
// X and Y are in [0, 2^Z).
type Coordinate struct {
	Z uint32
	X uint32
	Y uint32
}

// String returns the "{z}/{x}/{y}" form used in log and error messages.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Z, c.X, c.Y)
}

// Path returns the on-disk artifact path for this tile.
func (c Coordinate) Path() string {
	return fmt.Sprintf("%d/%d/%d.pbf", c.Z, c.X, c.Y)
}
