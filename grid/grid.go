package grid

import "fmt"

// SquareToCoords returns the zero-based (column, row) of the given
// national square letter, counted from the south-west corner V.
// Scale agnostic: H → (2, 3) whether H names a 500km or a 100km square.
// Returns ErrInvalidGridLetter for any character outside the alphabet,
// including the excluded I.
// Complexity: O(1).
func SquareToCoords(letter byte) (col, row int, err error) {
	for i, s := range squares {
		if s == letter {
			return i % Width, i / Width, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidGridLetter, letter)
}

// CoordsToSquare returns the national square letter at the zero-based
// (column, row), counted from the south-west corner V: (1, 1) → R.
// Returns ErrOutOfRange when either index lies outside [0,Width).
// Complexity: O(1).
func CoordsToSquare(col, row int) (byte, error) {
	if col < 0 || col >= Width || row < 0 || row >= Width {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, col, row)
	}

	return squares[row*Width+col], nil
}
