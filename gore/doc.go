// Package gore turns a cylindrical world map into the eight printable gore
// stripes of a paper globe.
//
// # Geometry
//
// The source raster is split into a fixed grid of 8 columns by 4 rows.
// Columns are equal slices of the image width; the vertical source band of
// each row depends on the map projection, because cylindrical projections
// stretch polar latitudes by different amounts. Every tile is resampled to
// a fixed row height and warped into a lens segment: the polar rows taper
// to a point, the equatorial rows bevel inward. Two "wing" patches sliced
// from the neighboring columns are warped, sheared and drawn on either side
// of each tile so the image continues past the cut line.
//
//	src, _ := image.Load("world.png")
//	stripes, err := gore.Generate(ctx, src, gore.Mercator)
//
// The geometric constants live in a named Calibration table (see
// DefaultCalibration) so they can be swapped without touching the algorithm.
package gore
