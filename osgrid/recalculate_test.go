package osgrid_test

import (
	"testing"

	"github.com/katalvlaran/gridref/osgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecalculate_Narrowing verifies narrowing truncates toward the
// south-west corner of the coarser cell: the spec's SO892437 → SO84.
func TestRecalculate_Narrowing(t *testing.T) {
	gridref100m, err := osgrid.ParseOSGB("SO892437")
	require.NoError(t, err)

	gridref10k := gridref100m.Recalculate(osgrid.Precision10km)
	assert.Equal(t, "SO84", gridref10k.String())
	assert.Equal(t, 380_000, gridref10k.Eastings())
	assert.Equal(t, 240_000, gridref10k.Northings())
	assert.Equal(t, osgrid.Precision10km, gridref10k.Precision())

	// The source reference is untouched.
	assert.Equal(t, "SO892437", gridref100m.String())
}

// TestRecalculate_Widening verifies widening keeps the coordinates and
// only re-declares the precision, so more digits appear but no
// information is invented.
func TestRecalculate_Widening(t *testing.T) {
	gridref10k, err := osgrid.ParseOSGB("SO84")
	require.NoError(t, err)

	gridref1m := gridref10k.Recalculate(osgrid.Precision1m)
	assert.Equal(t, 380_000, gridref1m.Eastings())
	assert.Equal(t, 240_000, gridref1m.Northings())
	assert.Equal(t, osgrid.Precision1m, gridref1m.Precision())
	assert.Equal(t, "SO8000040000", gridref1m.String())
}

// TestRecalculate_Monotonicity verifies recalculating stepwise through
// an intermediate precision equals recalculating directly to the
// coarser target.
func TestRecalculate_Monotonicity(t *testing.T) {
	gridref, err := osgrid.ParseOSGB("SO8929143762")
	require.NoError(t, err)

	precisions := []osgrid.Precision{
		osgrid.Precision10m, osgrid.Precision100m, osgrid.Precision1km,
		osgrid.Precision2km, osgrid.Precision10km, osgrid.Precision100km,
	}
	for i, intermediate := range precisions {
		for _, target := range precisions[i:] {
			direct := gridref.Recalculate(target)
			stepped := gridref.Recalculate(intermediate).Recalculate(target)
			assert.Equal(t, direct, stepped, "via %s to %s", intermediate, target)
		}
	}
}

// TestRecalculate_ToTetrad verifies narrowing a 100m reference to the
// 2km tetrad grid picks the containing DINTY cell.
func TestRecalculate_ToTetrad(t *testing.T) {
	gridref, err := osgrid.ParseOSGB("SO892437")
	require.NoError(t, err)

	tetrad := gridref.Recalculate(osgrid.Precision2km)
	assert.Equal(t, 388_000, tetrad.Eastings())
	assert.Equal(t, 242_000, tetrad.Northings())
	assert.Equal(t, "SO84W", tetrad.String())
}

// TestRecalculate_FromTetrad verifies a tetrad narrows to its 10km
// square by discarding the suffix letter.
func TestRecalculate_FromTetrad(t *testing.T) {
	tetrad, err := osgrid.ParseOSGB("SN24R")
	require.NoError(t, err)

	gridref10k := tetrad.Recalculate(osgrid.Precision10km)
	assert.Equal(t, "SN24", gridref10k.String())
	assert.Equal(t, 220_000, gridref10k.Eastings())
	assert.Equal(t, 240_000, gridref10k.Northings())
}

// TestRecalculate_InvalidPrecision verifies an unknown precision leaves
// the reference unchanged.
func TestRecalculate_InvalidPrecision(t *testing.T) {
	gridref, err := osgrid.ParseOSGB("SO84")
	require.NoError(t, err)

	assert.Equal(t, gridref.Ref, gridref.Recalculate(osgrid.Precision(42)))
}
