// Package grid implements the 5×5 letter grids that national grid
// references are addressed with.
//
// What:
//
//   - SquareToCoords / CoordsToSquare: national square letters ↔ zero-based
//     (column, row) indices. 25 letters, I excluded, origin at the
//     south-west square V.
//   - TetradToCoords / CoordsToTetrad: DINTY tetrad letters ↔ zero-based
//     (column, row) indices over the 5×5 sub-grid of a 10km square.
//     25 letters, O excluded, origin at the south-west square A.
//
// Why:
//
//   - The same letter arithmetic addresses 500km squares, 100km squares and
//     2km tetrads; only the alphabet and its arrangement differ. Keeping the
//     two alphabets side by side in one package keeps every caller scale
//     agnostic: H → (2,3) whether H names a 500km or a 100km square.
//
// Complexity:
//
//   - All conversions are O(1) table lookups with no allocation.
//
// Errors:
//
//   - ErrInvalidGridLetter: a character outside the national alphabet
//     (including the excluded I).
//   - ErrInvalidTetradLetter: a character outside the DINTY alphabet
//     (including the excluded O).
//   - ErrOutOfRange: a column or row index outside [0,5).
package grid
