package osgrid_test

import "github.com/katalvlaran/gridref/osgrid"

// refVector pins one known-good reference: its true-origin coordinates,
// precision, a permissive input spelling and the canonical output.
type refVector struct {
	eastings  int
	northings int
	precision osgrid.Precision
	input     string
	output    string
}

// osgbVectors covers every precision on the British grid, plus inputs
// with whitespace and mixed case that must normalize away.
func osgbVectors() []refVector {
	return []refVector{
		{300_000, 200_000, osgrid.Precision100km, "SO", "SO"},
		{380_000, 240_000, osgrid.Precision10km, "SO84", "SO84"},
		{389_000, 243_000, osgrid.Precision1km, "SO8943", "SO8943"},
		{389_200, 243_700, osgrid.Precision100m, "SO892437", "SO892437"},
		{389_290, 243_760, osgrid.Precision10m, "SO89294376", "SO89294376"},
		{389_291, 243_762, osgrid.Precision1m, "SO8929143762", "SO8929143762"},
		{224_000, 668_000, osgrid.Precision1km, "ns 24 68", "NS2468"},
		{365_000, 620_000, osgrid.Precision1km, "NT6520", "NT6520"},
		{512_300, 245_600, osgrid.Precision100m, " TL123456 ", "TL123456"},
		{503_400, 443_400, osgrid.Precision100m, "Ta 0344 34", "TA034434"},
		{226_000, 242_000, osgrid.Precision2km, "SN24R", "SN24R"},
	}
}

// osiVectors covers every precision on the Irish grid, including the
// tetrad vectors from the DINTY convention.
func osiVectors() []refVector {
	return []refVector{
		{300_000, 200_000, osgrid.Precision100km, "O", "O"},
		{380_000, 240_000, osgrid.Precision10km, "O84", "O84"},
		{389_000, 243_000, osgrid.Precision1km, "O8943", "O8943"},
		{389_200, 243_700, osgrid.Precision100m, "O892437", "O892437"},
		{389_290, 243_760, osgrid.Precision10m, "O89294376", "O89294376"},
		{389_291, 243_762, osgrid.Precision1m, "O8929143762", "O8929143762"},
		{224_000, 168_000, osgrid.Precision1km, "s 24 68", "S2468"},
		{365_000, 120_000, osgrid.Precision1km, "T6520", "T6520"},
		{12_300, 245_600, osgrid.Precision100m, " L123456 ", "L123456"},
		{3_400, 443_400, osgrid.Precision100m, "a 0344 34", "A034434"},
		{315_904, 234_671, osgrid.Precision1m, "O1590434671", "O1590434671"},
		{4_000, 238_000, osgrid.Precision2km, "L03P", "L03P"},
		{226_000, 242_000, osgrid.Precision2km, "N24R", "N24R"},
	}
}
