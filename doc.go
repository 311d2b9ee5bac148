// Package gridref converts between textual British and Irish national
// grid references and numeric easting/northing coordinates.
//
// 🚀 What is gridref?
//
//	A small, pure-Go codec for the OSGB (British) and OSI (Irish)
//	national grids:
//		• Parse: "SO892437" → eastings/northings at a declared precision
//		• Format: the exact inverse, always canonical uppercase
//		• Recalculate: re-express a reference at a coarser or finer precision
//		• Corners: SW/NW/NE/SE, centre, bounding box and perimeter as
//		  github.com/paulmach/orb geometries
//		• Tetrads: 2km DINTY references ("SN24R") as used in biological surveys
//
// ✨ Why choose gridref?
//
//   - Representation only – it never converts between coordinate systems;
//     it exists solely to bridge eastings/northings and their textual form
//   - Deterministic – every operation is a pure function over immutable
//     values, safe for concurrent use with no locking
//   - Data-driven – each national grid is a configuration value, not a code
//     path; a third grid is one more configuration, not new logic
//
// Everything is organized under two subpackages:
//
//	grid/   — the 5×5 letter-grid codec (national squares + DINTY tetrads)
//	osgrid/ — precision model, grid systems, references, parsing & printing
//
// Quick ASCII example:
//
//	    SO 892 437
//	    ││ │   └── northings within the 100km square (100m resolution)
//	    ││ └────── eastings within the 100km square (100m resolution)
//	    │└──────── 100km square O within the 500km square S
//	    └───────── 500km square S
//
//	go get github.com/katalvlaran/gridref
package gridref
