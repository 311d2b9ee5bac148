package osgrid

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// Ref is a validated national grid reference: a system, eastings and
// northings in whole metres from the system's true origin, and the
// precision the reference declares. Immutable once constructed — build
// one with New or Parse; Recalculate returns a fresh value. The zero
// Ref carries no system and is not a usable reference.
//
// The stored coordinates always name the cell's south-west corner and
// are exact multiples of the precision's cell size.
type Ref struct {
	sys       *System
	eastings  int
	northings int
	precision Precision
}

// New builds a reference from true-origin coordinates in metres,
// truncating them to the precision's grid.
//
// Returns ErrInvalidPrecision for an unknown precision and ErrOutOfRange
// for coordinates the system's letter grid cannot address.
//
// Example:
//
//	ref, _ := osgrid.New(osgrid.British, 389_200, 243_700, osgrid.Precision100m)
//	fmt.Println(ref) // SO892437
func New(sys *System, eastings, northings int, precision Precision) (Ref, error) {
	if !precision.Valid() {
		return Ref{}, fmt.Errorf("%w: Precision(%d)", ErrInvalidPrecision, int(precision))
	}
	if err := sys.check(eastings, northings); err != nil {
		return Ref{}, err
	}

	return Ref{
		sys:       sys,
		eastings:  truncate(eastings, precision),
		northings: truncate(northings, precision),
		precision: precision,
	}, nil
}

// System returns the national grid the reference belongs to.
func (r Ref) System() *System { return r.sys }

// Eastings returns the metres east of the true origin at the
// reference's south-west corner.
func (r Ref) Eastings() int { return r.eastings }

// Northings returns the metres north of the true origin at the
// reference's south-west corner.
func (r Ref) Northings() int { return r.northings }

// Precision returns the reference's declared precision.
func (r Ref) Precision() Precision { return r.precision }

// Recalculate re-expresses the reference at the given precision.
// Narrowing truncates toward the south-west corner of the coarser cell;
// widening keeps the coordinates (already aligned to the coarser grid)
// and only changes how many digits String prints. Never rounds, never
// invents information, never fails: an invalid precision returns the
// reference unchanged.
//
// Example:
//
//	gridref100m, _ := osgrid.Parse(osgrid.British, "SO892437")
//	gridref10k := gridref100m.Recalculate(osgrid.Precision10km)
//	fmt.Println(gridref10k) // SO84
func (r Ref) Recalculate(precision Precision) Ref {
	if !precision.Valid() {
		return r
	}

	return Ref{
		sys:       r.sys,
		eastings:  truncate(r.eastings, precision),
		northings: truncate(r.northings, precision),
		precision: precision,
	}
}

// SW returns the reference's south-west corner — its origin — in metres.
func (r Ref) SW() orb.Point {
	return orb.Point{float64(r.eastings), float64(r.northings)}
}

// NW returns the reference's north-west corner in metres.
func (r Ref) NW() orb.Point {
	return orb.Point{float64(r.eastings), float64(r.northings + r.precision.Metres())}
}

// NE returns the reference's north-east corner in metres.
func (r Ref) NE() orb.Point {
	return orb.Point{
		float64(r.eastings + r.precision.Metres()),
		float64(r.northings + r.precision.Metres()),
	}
}

// SE returns the reference's south-east corner in metres.
func (r Ref) SE() orb.Point {
	return orb.Point{float64(r.eastings + r.precision.Metres()), float64(r.northings)}
}

// Centre returns the centre of the reference's cell in metres.
func (r Ref) Centre() orb.Point {
	half := float64(r.precision.Metres()) / 2
	return orb.Point{float64(r.eastings) + half, float64(r.northings) + half}
}

// Bound returns the cell as an orb.Bound spanning SW to NE.
func (r Ref) Bound() orb.Bound {
	return orb.Bound{Min: r.SW(), Max: r.NE()}
}

// Perimeter returns the cell's outline as a closed orb.Polygon ring,
// wound SW → NW → NE → SE.
func (r Ref) Perimeter() orb.Polygon {
	return orb.Polygon{orb.Ring{r.SW(), r.NW(), r.NE(), r.SE(), r.SW()}}
}

// MarshalJSON encodes the reference as its canonical string form, e.g.
// "SO892437", so serialized references stay interchangeable with every
// tool that speaks standard grid-reference notation.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// truncate aligns metres down to the precision's grid.
func truncate(metres int, precision Precision) int {
	return metres - metres%precision.Metres()
}
