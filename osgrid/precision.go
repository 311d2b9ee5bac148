package osgrid

import "fmt"

// Precision is the side length of the square a grid reference denotes.
// Values are ordered coarse to fine, so Precision100km < Precision1m and
// plain < / > comparisons answer "is this coarser/finer than that".
type Precision int

const (
	// Precision100km denotes a 100km square: no digits, letters only.
	Precision100km Precision = iota
	// Precision10km denotes a 10km square: one digit per axis.
	Precision10km
	// Precision2km denotes a 2km DINTY tetrad: one digit per axis plus a
	// single suffix letter over the 5×5 sub-grid of the 10km square.
	Precision2km
	// Precision1km denotes a 1km square: two digits per axis.
	Precision1km
	// Precision100m denotes a 100m square: three digits per axis.
	Precision100m
	// Precision10m denotes a 10m square: four digits per axis.
	Precision10m
	// Precision1m denotes a 1m square: five digits per axis.
	Precision1m
)

// Metres returns the precision's cell size in metres.
func (p Precision) Metres() int {
	switch p {
	case Precision100km:
		return metres100km
	case Precision10km:
		return metres10km
	case Precision2km:
		return metres2km
	case Precision1km:
		return metres1km
	case Precision100m:
		return metres100m
	case Precision10m:
		return metres10m
	case Precision1m:
		return metres1m
	default:
		return 0
	}
}

// Digits returns the total number of digits in a reference at this
// precision. Both axes always carry the same digit count, so the value
// is even; a tetrad reference carries one digit per axis plus its
// suffix letter.
func (p Precision) Digits() int {
	switch p {
	case Precision100km:
		return 0
	case Precision10km, Precision2km:
		return 2
	case Precision1km:
		return 4
	case Precision100m:
		return 6
	case Precision10m:
		return 8
	case Precision1m:
		return 10
	default:
		return 0
	}
}

// IsTetrad reports whether the precision carries a DINTY suffix letter.
func (p Precision) IsTetrad() bool {
	return p == Precision2km
}

// Valid reports whether p is one of the supported precisions.
func (p Precision) Valid() bool {
	return p >= Precision100km && p <= Precision1m
}

// String returns the precision's cell size, e.g. "100km" or "1m".
func (p Precision) String() string {
	switch p {
	case Precision100km:
		return "100km"
	case Precision10km:
		return "10km"
	case Precision2km:
		return "2km"
	case Precision1km:
		return "1km"
	case Precision100m:
		return "100m"
	case Precision10m:
		return "10m"
	case Precision1m:
		return "1m"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// PrecisionForDigits maps the total digit count of a reference's numeric
// portion to its numeric precision. Tetrads are not reachable this way:
// their digit count (2) maps to Precision10km, and the suffix letter
// narrows it separately during parsing.
// Returns ErrInvalidPrecision for counts outside {0, 2, 4, 6, 8, 10}.
func PrecisionForDigits(n int) (Precision, error) {
	switch n {
	case 0:
		return Precision100km, nil
	case 2:
		return Precision10km, nil
	case 4:
		return Precision1km, nil
	case 6:
		return Precision100m, nil
	case 8:
		return Precision10m, nil
	case 10:
		return Precision1m, nil
	default:
		return 0, fmt.Errorf("%w: %d digits (supported: 0, 2, 4, 6, 8, 10)", ErrInvalidPrecision, n)
	}
}
