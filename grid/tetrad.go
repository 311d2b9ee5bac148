package grid

import "fmt"

// TetradToCoords returns the zero-based (column, row) of the given DINTY
// tetrad letter within its 10km square, counted from the south-west
// corner A. The DINTY grid runs column-major: A..E climb the first
// column, F..J the second, and so on; O is excluded.
// Returns ErrInvalidTetradLetter for any character outside the alphabet.
// Complexity: O(1).
func TetradToCoords(letter byte) (col, row int, err error) {
	for i, t := range tetrads {
		if t == letter {
			return i / Width, i % Width, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTetradLetter, letter)
}

// CoordsToTetrad returns the DINTY tetrad letter at the zero-based
// (column, row) within a 10km square: (1, 1) → G.
// Returns ErrOutOfRange when either index lies outside [0,Width).
// Complexity: O(1).
func CoordsToTetrad(col, row int) (byte, error) {
	if col < 0 || col >= Width || row < 0 || row >= Width {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, col, row)
	}

	return tetrads[col*Width+row], nil
}
