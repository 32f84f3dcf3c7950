package image

import (
	"errors"
	"testing"
)

func TestResize_Uniform(t *testing.T) {
	src, _ := NewImageBuf(4, 4)
	src.Fill(200, 100, 50, 255)

	for _, size := range [][2]int{{8, 8}, {2, 3}, {5, 1}} {
		dst, _ := NewImageBuf(size[0], size[1])
		if err := Resize(dst, src); err != nil {
			t.Fatalf("Resize error = %v", err)
		}
		for y := range dst.Height() {
			for x := range dst.Width() {
				r, g, b, a := dst.GetRGBA(x, y)
				if absDiff(r, 200) > 1 || absDiff(g, 100) > 1 || absDiff(b, 50) > 1 || a != 255 {
					t.Fatalf("%dx%d pixel (%d,%d) = (%d,%d,%d,%d), want ~(200,100,50,255)",
						size[0], size[1], x, y, r, g, b, a)
				}
			}
		}
	}
}

func TestResizeRegion(t *testing.T) {
	src, _ := NewImageBuf(8, 4)
	left := src.SubImage(0, 0, 4, 4)
	left.Fill(255, 0, 0, 255)
	right := src.SubImage(4, 0, 4, 4)
	right.Fill(0, 0, 255, 255)

	dst, _ := NewImageBuf(6, 6)
	if err := ResizeRegion(dst, src, Rect{X: 4, Y: 0, Width: 4, Height: 4}); err != nil {
		t.Fatalf("ResizeRegion error = %v", err)
	}
	// Only the blue half was sampled.
	if r, _, b, _ := dst.GetRGBA(0, 3); r > 1 || b < 254 {
		t.Errorf("edge pixel = r%d b%d, want pure blue", r, b)
	}

	if err := ResizeRegion(dst, src, Rect{X: 6, Y: 0, Width: 4, Height: 4}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ResizeRegion out of bounds error = %v, want ErrOutOfBounds", err)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
