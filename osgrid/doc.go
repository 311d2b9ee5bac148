// Package osgrid parses, prints and recalculates British (OSGB) and
// Irish (OSI) national grid references.
//
// What:
//
//   - Precision: the supported reference resolutions, 100km down to 1m,
//     plus the 2km DINTY tetrad.
//   - System: data-driven description of one national letter grid
//     (false origin, letters per reference, square sizes, permitted
//     outer squares). British and Irish are the two shipped instances.
//   - Ref: an immutable, validated grid reference. Parse and New build
//     one; String prints the canonical uppercase form; Recalculate
//     re-expresses it at another precision; SW/NW/NE/SE/Centre/Bound/
//     Perimeter derive github.com/paulmach/orb geometries in metres.
//   - OSGB / OSI: named wrappers over Ref that pin the system, with
//     JSON (un)marshalling to the canonical string form.
//
// Why:
//
//   - Biological records, heritage registers and walking routes exchange
//     locations as grid-reference strings; mapping pipelines want
//     eastings/northings. This package is the bridge — and only the
//     bridge: it never converts datums or projections.
//
// Complexity:
//
//   - Every operation is O(1) (at most one pass over a ≤12 character
//     string), allocation-free except for the output value.
//
// Errors:
//
//   - ErrInvalidLength: empty input, odd or over-long digit runs,
//     trailing characters after the digit run.
//   - ErrInvalidPrecision: a digit count or Precision value that maps to
//     no supported resolution.
//   - ErrOutOfRange: coordinates outside the system's letter grid, or an
//     outer square the grid does not define.
//   - grid.ErrInvalidGridLetter, grid.ErrInvalidTetradLetter: propagated
//     from the letter codec.
package osgrid
