package osgrid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridref/grid"
)

// System describes one national letter grid as pure data: where its
// letter space sits relative to the true origin, how many letters a
// reference carries, and which squares those letters may address.
// Adding a third national grid means adding a System value, not code.
type System struct {
	// Name identifies the grid, e.g. "OSGB".
	Name string
	// Letters is the number of leading letters in a reference: 2 for
	// OSGB (500km square then 100km square), 1 for OSI.
	Letters int
	// OuterSize is the side in metres of the square the first letter
	// addresses. Equal to InnerSize on single-letter grids.
	OuterSize int
	// InnerSize is the side in metres of the square the last letter
	// addresses: the 100km square the digits subdivide.
	InnerSize int
	// FalseOriginEast/North are the offsets in metres added to a
	// true-origin coordinate to reach the letter grid's own (0,0),
	// which sits at the south-west corner of square V.
	FalseOriginEast  int
	FalseOriginNorth int
	// ValidOuter lists the outer letters the grid actually defines.
	// Empty means all 25; OSGB only charts the S, T, N, O and H band
	// of 500km squares.
	ValidOuter string
}

// British is the Ordnance Survey National Grid (OSGB). Two letters: a
// 500km square, then a 100km square. The true origin lies two 500km
// squares east and one north of letter space's south-west corner, which
// puts it at the south-west corner of square S.
var British = &System{
	Name:             "OSGB",
	Letters:          2,
	OuterSize:        5 * metres100km,
	InnerSize:        metres100km,
	FalseOriginEast:  10 * metres100km,
	FalseOriginNorth: 5 * metres100km,
	ValidOuter:       "HNOST",
}

// Irish is the Irish National Grid (OSI). A single letter addresses one
// of 25 100km squares, and the letter grid's origin coincides with the
// true origin.
var Irish = &System{
	Name:             "OSI",
	Letters:          1,
	OuterSize:        metres100km,
	InnerSize:        metres100km,
	FalseOriginEast:  0,
	FalseOriginNorth: 0,
}

// Extent returns the side in metres of the whole letter grid: the span
// the outer letters address.
func (s *System) Extent() int {
	return grid.Width * s.OuterSize
}

// check validates that a true-origin coordinate pair lies on a square
// the system defines. Reports ErrOutOfRange otherwise.
func (s *System) check(eastings, northings int) error {
	if eastings < 0 || northings < 0 {
		return fmt.Errorf("%w: (%d,%d) lies south or west of the grid", ErrOutOfRange, eastings, northings)
	}

	le := eastings + s.FalseOriginEast
	ln := northings + s.FalseOriginNorth
	if le >= s.Extent() || ln >= s.Extent() {
		return fmt.Errorf("%w: (%d,%d) lies beyond the letter grid", ErrOutOfRange, eastings, northings)
	}

	if s.ValidOuter != "" {
		// Cannot fail: the bounds above keep both indices inside the grid.
		outer, _ := grid.CoordsToSquare(le/s.OuterSize, ln/s.OuterSize)
		if !strings.Contains(s.ValidOuter, string(outer)) {
			return fmt.Errorf("%w: %c is not a defined outer square of %s", ErrOutOfRange, outer, s.Name)
		}
	}

	return nil
}
