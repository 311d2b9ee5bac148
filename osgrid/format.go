package osgrid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridref/grid"
)

// String prints the reference in canonical form: uppercase letters,
// easting digits then northing digits zero-padded to the precision's
// width, and the DINTY suffix letter for tetrads. The output always
// round-trips: Parse(r.System(), r.String()) reproduces r exactly.
//
// Example:
//
//	ref, _ := osgrid.New(osgrid.British, 389_200, 243_700, osgrid.Precision100m)
//	fmt.Println(ref) // SO892437
func (r Ref) String() string {
	le := r.eastings + r.sys.FalseOriginEast
	ln := r.northings + r.sys.FalseOriginNorth

	var b strings.Builder
	// Letter lookups cannot fail: construction validated the coordinates.
	if r.sys.Letters == 2 {
		outer, _ := grid.CoordsToSquare(le/r.sys.OuterSize, ln/r.sys.OuterSize)
		inner, _ := grid.CoordsToSquare(le%r.sys.OuterSize/r.sys.InnerSize, ln%r.sys.OuterSize/r.sys.InnerSize)
		b.WriteByte(outer)
		b.WriteByte(inner)
	} else {
		letter, _ := grid.CoordsToSquare(le/r.sys.InnerSize, ln/r.sys.InnerSize)
		b.WriteByte(letter)
	}

	if r.precision.IsTetrad() {
		b.WriteString(pad(le, Precision10km))
		b.WriteString(pad(ln, Precision10km))
		tetrad, _ := grid.CoordsToTetrad(le%metres10km/metres2km, ln%metres10km/metres2km)
		b.WriteByte(tetrad)
	} else {
		b.WriteString(pad(le, r.precision))
		b.WriteString(pad(ln, r.precision))
	}

	return b.String()
}

// pad renders the metres within the current 100km square as the
// precision's zero-padded digit group; empty at 100km precision.
func pad(metres int, precision Precision) string {
	if precision.Digits() == 0 {
		return ""
	}

	return fmt.Sprintf("%0*d", precision.Digits()/2, metres%metres100km/precision.Metres())
}
