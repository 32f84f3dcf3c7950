package image

import "math"

// InterpolationMode defines how source pixels are sampled.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel.
	InterpNearest InterpolationMode = iota

	// InterpBilinear interpolates between 4 neighboring pixels.
	InterpBilinear

	// InterpBicubic uses a Catmull-Rom 4x4 neighborhood.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Sample samples img at continuous pixel coordinates (x, y), where pixel
// (i, j) covers [i, i+1) x [j, j+1). Neighbors outside the image are
// clamped to the edge; callers decide what lies outside the source.
func Sample(img *ImageBuf, x, y float64, mode InterpolationMode) (r, g, b, a uint8) {
	switch mode {
	case InterpNearest:
		return sampleNearest(img, x, y)
	case InterpBilinear:
		return sampleBilinear(img, x, y)
	case InterpBicubic:
		return sampleBicubic(img, x, y)
	default:
		return 0, 0, 0, 0
	}
}

func sampleNearest(img *ImageBuf, x, y float64) (r, g, b, a uint8) {
	w, h := img.Bounds()
	px := clamp(int(math.Floor(x)), 0, w-1)
	py := clamp(int(math.Floor(y)), 0, h-1)
	return img.GetRGBA(px, py)
}

// sampleBilinear interpolates in premultiplied space so transparent
// neighbors do not bleed their (meaningless) color into the result.
func sampleBilinear(img *ImageBuf, x, y float64) (r, g, b, a uint8) {
	w, h := img.Bounds()

	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	xs := [2]int{clamp(x0, 0, w-1), clamp(x0+1, 0, w-1)}
	ys := [2]int{clamp(y0, 0, h-1), clamp(y0+1, 0, h-1)}
	wx := [2]float64{1 - tx, tx}
	wy := [2]float64{1 - ty, ty}

	var acc [4]float64
	for j := range 2 {
		for i := range 2 {
			wgt := wx[i] * wy[j]
			if wgt == 0 {
				continue
			}
			pr, pg, pb, pa := img.GetRGBA(xs[i], ys[j])
			af := float64(pa) / 255
			acc[0] += float64(pr) * af * wgt
			acc[1] += float64(pg) * af * wgt
			acc[2] += float64(pb) * af * wgt
			acc[3] += float64(pa) * wgt
		}
	}
	return unpremultiply(acc)
}

func sampleBicubic(img *ImageBuf, x, y float64) (r, g, b, a uint8) {
	w, h := img.Bounds()

	fx := x - 0.5
	fy := y - 0.5
	ix := int(math.Floor(fx))
	iy := int(math.Floor(fy))
	tx := fx - float64(ix)
	ty := fy - float64(iy)

	wx := [4]float64{cubicWeight(tx + 1), cubicWeight(tx), cubicWeight(tx - 1), cubicWeight(tx - 2)}
	wy := [4]float64{cubicWeight(ty + 1), cubicWeight(ty), cubicWeight(ty - 1), cubicWeight(ty - 2)}

	var acc [4]float64
	for dy := range 4 {
		py := clamp(iy+dy-1, 0, h-1)
		for dx := range 4 {
			px := clamp(ix+dx-1, 0, w-1)
			wgt := wx[dx] * wy[dy]
			pr, pg, pb, pa := img.GetRGBA(px, py)
			af := float64(pa) / 255
			acc[0] += float64(pr) * af * wgt
			acc[1] += float64(pg) * af * wgt
			acc[2] += float64(pb) * af * wgt
			acc[3] += float64(pa) * wgt
		}
	}
	return unpremultiply(acc)
}

// unpremultiply converts accumulated premultiplied channels back to RGBA8.
func unpremultiply(acc [4]float64) (r, g, b, a uint8) {
	alpha := clampFloat(acc[3], 0, 255)
	if alpha < 0.5 {
		return 0, 0, 0, 0
	}
	af := alpha / 255
	r = uint8(clampFloat(acc[0]/af+0.5, 0, 255))
	g = uint8(clampFloat(acc[1]/af+0.5, 0, 255))
	b = uint8(clampFloat(acc[2]/af+0.5, 0, 255))
	return r, g, b, uint8(alpha + 0.5)
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}
