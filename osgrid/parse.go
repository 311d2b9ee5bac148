package osgrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridref/grid"
)

// Parse converts a textual grid reference into a Ref on the given
// system. Input is case-insensitive and may contain ASCII whitespace
// ("so 892 437" parses like "SO892437"); everything else must follow
// the grammar letters, then an even run of 0–10 digits, then optionally
// a single DINTY tetrad letter after a 2-digit run.
//
// Returns ErrInvalidLength for empty input, odd or over-long digit runs
// and trailing characters; grid.ErrInvalidGridLetter or
// grid.ErrInvalidTetradLetter for letters outside their alphabets; and
// ErrOutOfRange when the decoded square is one the system does not
// define.
//
// Example:
//
//	ref, _ := osgrid.Parse(osgrid.British, "SO892437")
//	fmt.Println(ref.SW()) // [389200 243700]
func Parse(sys *System, s string) (Ref, error) {
	t := normalize(s)
	if len(t) < sys.Letters {
		return Ref{}, fmt.Errorf("%w: %q is shorter than the %d letter prefix", ErrInvalidLength, t, sys.Letters)
	}

	eastings, northings, err := letterOrigin(sys, t[:sys.Letters])
	if err != nil {
		return Ref{}, err
	}

	rest := t[sys.Letters:]

	// Tetrad form: one digit per axis, then a DINTY letter.
	if len(rest) == 3 && !isDigit(rest[2]) {
		col, row, err := grid.TetradToCoords(rest[2])
		if err != nil {
			return Ref{}, err
		}
		de, dn, _, err := digitOffsets(rest[:2])
		if err != nil {
			return Ref{}, err
		}

		return New(sys, eastings+de+col*metres2km, northings+dn+row*metres2km, Precision2km)
	}

	de, dn, precision, err := digitOffsets(rest)
	if err != nil {
		return Ref{}, err
	}

	return New(sys, eastings+de, northings+dn, precision)
}

// letterOrigin decodes the letter prefix into the true-origin metres of
// the addressed 100km square's south-west corner. The result may be
// negative for letters south or west of the true origin; New rejects
// those with ErrOutOfRange.
func letterOrigin(sys *System, letters string) (eastings, northings int, err error) {
	if sys.Letters == 2 {
		outerCol, outerRow, err := grid.SquareToCoords(letters[0])
		if err != nil {
			return 0, 0, err
		}
		innerCol, innerRow, err := grid.SquareToCoords(letters[1])
		if err != nil {
			return 0, 0, err
		}

		eastings = outerCol*sys.OuterSize + innerCol*sys.InnerSize - sys.FalseOriginEast
		northings = outerRow*sys.OuterSize + innerRow*sys.InnerSize - sys.FalseOriginNorth

		return eastings, northings, nil
	}

	col, row, err := grid.SquareToCoords(letters[0])
	if err != nil {
		return 0, 0, err
	}

	return col*sys.InnerSize - sys.FalseOriginEast, row*sys.InnerSize - sys.FalseOriginNorth, nil
}

// digitOffsets converts a reference's digit run into easting and
// northing offsets in metres within the 100km square, plus the
// precision the digit count implies. The first half of the run is the
// easting, the second the northing — never interleaved — and each digit
// is worth one decimal order of magnitude of the 100km square.
func digitOffsets(s string) (eastings, northings int, precision Precision, err error) {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, 0, 0, fmt.Errorf("%w: unexpected character %q after the digit run", ErrInvalidLength, s[i])
		}
	}
	if len(s)%2 != 0 || len(s) > 10 {
		return 0, 0, 0, fmt.Errorf("%w: %d is not a valid number of digits (supported: 0, 2, 4, 6, 8, 10)", ErrInvalidLength, len(s))
	}

	// The length check above guarantees a supported digit count.
	precision, _ = PrecisionForDigits(len(s))
	if len(s) == 0 {
		return 0, 0, precision, nil
	}

	// Atoi cannot fail on a validated digit run.
	half := len(s) / 2
	e, _ := strconv.Atoi(s[:half])
	n, _ := strconv.Atoi(s[half:])

	return e * precision.Metres(), n * precision.Metres(), precision, nil
}

// normalize strips ASCII whitespace and uppercases, so "so 14 5"
// becomes "SO145". Non-ASCII input passes through untouched and fails
// letter or digit validation downstream.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r' {
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}

	return b.String()
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
