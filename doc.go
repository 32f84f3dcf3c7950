// Package paperglobe turns a cylindrical world map into a printable paper
// globe: eight gore stripes laid out on a 4-page PDF template.
//
// # Quick Start
//
//	import "github.com/gogpu/paperglobe"
//
//	out, err := paperglobe.Generate(ctx, paperglobe.Request{
//	    Source:     "world.jpg",
//	    Projection: "equirectangular",
//	    Size:       "a4",
//	})
//	// out == "world_a4.pdf"
//
// # Pipeline
//
// Generate parses the projection and print size, decodes the source image,
// cuts it into 8 columns x 4 latitude rows, warps every tile into its gore
// segment, adds wing patches that continue the map past each gore edge, and
// stamps the eight stripes onto the template of the chosen size.
//
// The geometry lives in package gore and the PDF step in package template;
// both can be used on their own.
//
// # Inputs
//
// Raster sources may be PNG, JPEG, GIF, BMP, TIFF or WebP. SVG sources are
// rasterized at 450 DPI, at most 2048 pixels wide.
//
// # Errors
//
// Failures wrap one of the sentinels re-exported here; KindOf classifies
// any returned error. The library never formats user-facing messages.
package paperglobe

// Version is the current version of the library.
const Version = "0.1.0"
