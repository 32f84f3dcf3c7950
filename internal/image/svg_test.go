package image

import (
	"strings"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 96 48" width="96" height="48">
<rect x="0" y="0" width="96" height="48" fill="#ff0000"/>
</svg>`

func TestSVGSize(t *testing.T) {
	tests := []struct {
		name         string
		vw, vh, dpi  float64
		maxWidth     int
		wantW, wantH int
	}{
		{"css pixels", 96, 48, 96, 0, 96, 48},
		{"450 dpi", 100, 50, SVGResolution, MaxVectorWidth, 469, 234},
		{"capped", 1000, 500, SVGResolution, MaxVectorWidth, 2048, 1024},
		{"uncapped", 1000, 500, SVGResolution, 0, 4688, 2344},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := svgSize(tt.vw, tt.vh, tt.dpi, tt.maxWidth)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("svgSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDecodeSVG(t *testing.T) {
	img, err := DecodeSVG(strings.NewReader(testSVG), 96, 0)
	if err != nil {
		t.Fatalf("DecodeSVG error = %v", err)
	}
	if img.Width() != 96 || img.Height() != 48 {
		t.Fatalf("size = %dx%d, want 96x48", img.Width(), img.Height())
	}
	if r, g, b, a := img.GetRGBA(48, 24); r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("center = (%d,%d,%d,%d), want opaque red", r, g, b, a)
	}

	small, err := DecodeSVG(strings.NewReader(testSVG), 96, 48)
	if err != nil {
		t.Fatalf("DecodeSVG capped error = %v", err)
	}
	if small.Width() != 48 || small.Height() != 24 {
		t.Errorf("capped size = %dx%d, want 48x24", small.Width(), small.Height())
	}
}

func TestDecodeSVG_Invalid(t *testing.T) {
	if _, err := DecodeSVG(strings.NewReader("<svg"), 96, 0); err == nil {
		t.Error("DecodeSVG(truncated) succeeded")
	}
}
