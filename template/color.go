package template

import (
	"image/color"

	"github.com/gogpu/paperglobe/internal/image"
)

// PrintColor returns a copy of img run through the print colour model:
// each pixel is converted to CMYK and back to RGB. Alpha is kept.
func PrintColor(img *image.ImageBuf) *image.ImageBuf {
	out := img.Clone()
	for y := range out.Height() {
		row := out.RowBytes(y)
		for x := 0; x+3 < len(row); x += 4 {
			c, m, yy, k := color.RGBToCMYK(row[x], row[x+1], row[x+2])
			row[x], row[x+1], row[x+2] = color.CMYKToRGB(c, m, yy, k)
		}
	}
	return out
}
