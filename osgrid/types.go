// Package osgrid defines core types, constants, and sentinel errors
// for the osgrid subpackage of github.com/katalvlaran/gridref.
package osgrid

import "errors"

// Sentinel errors for grid reference construction and parsing.
var (
	// ErrInvalidLength indicates an empty reference, an odd or over-long
	// digit run, or trailing characters after the digit run.
	ErrInvalidLength = errors.New("osgrid: invalid grid reference length")
	// ErrInvalidPrecision indicates a digit count or Precision value that
	// maps to no supported resolution.
	ErrInvalidPrecision = errors.New("osgrid: invalid precision")
	// ErrOutOfRange indicates coordinates outside the system's letter
	// grid, or an outer square the grid does not define.
	ErrOutOfRange = errors.New("osgrid: coordinates out of range")
)

// Metre sizes of the squares a reference can address.
const (
	metres100km = 100_000
	metres10km  = 10_000
	metres2km   = 2_000
	metres1km   = 1_000
	metres100m  = 100
	metres10m   = 10
	metres1m    = 1
)
