// Package grid defines the letter tables and sentinel errors for the
// grid subpackage of github.com/katalvlaran/gridref.
package grid

import "errors"

// Sentinel errors for grid letter conversions.
var (
	// ErrInvalidGridLetter indicates a character outside the national
	// square alphabet (A–Z without I).
	ErrInvalidGridLetter = errors.New("grid: not a valid grid square letter")
	// ErrInvalidTetradLetter indicates a character outside the DINTY
	// tetrad alphabet (A–Z without O).
	ErrInvalidTetradLetter = errors.New("grid: not a valid tetrad letter")
	// ErrOutOfRange indicates a column or row index outside the 5×5 grid.
	ErrOutOfRange = errors.New("grid: coordinates outside the 5x5 grid")
)

// Width is the side length of every letter grid: 5 squares,
// hence 25 usable letters per alphabet.
const Width = 5

// squares is the national square alphabet laid out row-major from the
// south-west corner: V is (0,0), Z is (4,0), A is (0,4), E is (4,4).
// I is excluded.
var squares = [Width * Width]byte{
	'V', 'W', 'X', 'Y', 'Z',
	'Q', 'R', 'S', 'T', 'U',
	'L', 'M', 'N', 'O', 'P',
	'F', 'G', 'H', 'J', 'K',
	'A', 'B', 'C', 'D', 'E',
}

// tetrads is the DINTY alphabet laid out column-major from the
// south-west corner: A is (0,0), E is (0,4), V is (4,0), Z is (4,4).
// O is excluded.
var tetrads = [Width * Width]byte{
	'A', 'B', 'C', 'D', 'E',
	'F', 'G', 'H', 'I', 'J',
	'K', 'L', 'M', 'N', 'P',
	'Q', 'R', 'S', 'T', 'U',
	'V', 'W', 'X', 'Y', 'Z',
}
