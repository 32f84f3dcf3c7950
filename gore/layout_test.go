package gore

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/paperglobe/internal/image"
)

// layoutNumbers is the comparable part of a Layout.
type layoutNumbers struct {
	TileWidth, TileHeight int
	WingWidth, Padding    int
	StripeWidth           int
	StripeHeight          int
	RowHeights            [Rows]int
	Bands                 [Rows]Span
}

func numbers(l Layout) layoutNumbers {
	return layoutNumbers{
		TileWidth:    l.TileWidth,
		TileHeight:   l.TileHeight,
		WingWidth:    l.WingWidth,
		Padding:      l.Padding,
		StripeWidth:  l.StripeWidth,
		StripeHeight: l.StripeHeight(),
		RowHeights:   l.RowHeights,
		Bands:        l.Bands,
	}
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		projection    Projection
		want          layoutNumbers
	}{
		{
			name:       "equirectangular 4096x2048",
			width:      4096,
			height:     2048,
			projection: Equirectangular,
			want: layoutNumbers{
				TileWidth: 512, TileHeight: 512,
				WingWidth: 40, Padding: 74,
				StripeWidth: 592, StripeHeight: 1966,
				RowHeights: [Rows]int{478, 505, 505, 478},
				Bands:      [Rows]Span{{0, 512}, {512, 1024}, {1024, 1536}, {1536, 2048}},
			},
		},
		{
			name:       "mercator 4096x2048",
			width:      4096,
			height:     2048,
			projection: Mercator,
			want: layoutNumbers{
				TileWidth: 512, TileHeight: 512,
				WingWidth: 40, Padding: 74,
				StripeWidth: 592, StripeHeight: 1966,
				RowHeights: [Rows]int{478, 505, 505, 478},
				Bands:      [Rows]Span{{0, 737}, {737, 1024}, {1024, 1310}, {1310, 2048}},
			},
		},
		{
			name:       "gall-stereo 4096x2048",
			width:      4096,
			height:     2048,
			projection: GallStereo,
			want: layoutNumbers{
				TileWidth: 512, TileHeight: 512,
				WingWidth: 40, Padding: 74,
				StripeWidth: 592, StripeHeight: 1966,
				RowHeights: [Rows]int{478, 505, 505, 478},
				Bands:      [Rows]Span{{0, 604}, {604, 1024}, {1024, 1443}, {1443, 2048}},
			},
		},
		{
			name:       "no room for wings",
			width:      16,
			height:     4,
			projection: Equirectangular,
			want: layoutNumbers{
				TileWidth: 2, TileHeight: 1,
				WingWidth: 0, Padding: 0,
				StripeWidth: 2, StripeHeight: 4,
				RowHeights: [Rows]int{1, 1, 1, 1},
				Bands:      [Rows]Span{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.width, tt.height, tt.projection, DefaultCalibration())
			if err != nil {
				t.Fatalf("NewLayout error = %v", err)
			}
			if diff := cmp.Diff(tt.want, numbers(l)); diff != "" {
				t.Errorf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewLayout_RowHeightsIndependentOfProjection(t *testing.T) {
	var first [Rows]int
	for i, p := range Projections() {
		l, err := NewLayout(3000, 1700, p, DefaultCalibration())
		if err != nil {
			t.Fatalf("%s: NewLayout error = %v", p, err)
		}
		if i == 0 {
			first = l.RowHeights
			continue
		}
		if l.RowHeights != first {
			t.Errorf("%s row heights = %v, want %v", p, l.RowHeights, first)
		}
	}
}

func TestNewLayout_Errors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		projection    Projection
		wantErr       error
	}{
		{"narrower than the grid", 7, 100, Equirectangular, ErrInvalidImage},
		{"shorter than the grid", 100, 3, Equirectangular, ErrInvalidImage},
		{"empty rows", 8, 4, Equirectangular, ErrInvalidImage},
		{"unknown projection", 4096, 2048, "robinson", ErrUnsupportedProjection},
		{"wing shear too steep", 4096, 444, Equirectangular, ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLayout(tt.width, tt.height, tt.projection, DefaultCalibration()); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewLayout error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLayout_ShearBound(t *testing.T) {
	// 512x125 tiles scale the polar shear to just under the bound.
	l, err := NewLayout(4096, 500, Equirectangular, DefaultCalibration())
	if err != nil {
		t.Fatalf("NewLayout error = %v", err)
	}
	for r := range Rows {
		for _, side := range []Side{West, East} {
			if a := math.Abs(l.ShearAngle(r, side)); a >= MaxShearAngle {
				t.Errorf("row %d shear = %.2f, want below %v", r, a, MaxShearAngle)
			}
		}
	}
	band := l.Bands[0].Len()
	if w := image.ShearedWidth(l.WingWidth, band, l.ShearAngle(0, West)); w > 10*band {
		t.Errorf("sheared wing width = %d for a %d row band", w, band)
	}

	if _, err := NewLayout(4096, 496, Equirectangular, DefaultCalibration()); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("NewLayout(4096x496) error = %v, want ErrInvalidImage", err)
	}
}

func TestBands_CoverHeight(t *testing.T) {
	for _, p := range Projections() {
		for _, h := range []int{4, 7, 100, 1001, 2048} {
			prof, _ := ProfileOf(p)
			b := bands(h, prof)
			if b[0].Start != 0 || b[Rows-1].End != h {
				t.Errorf("%s h=%d: bands %v do not cover [0, %d)", p, h, b, h)
			}
			for r := range Rows {
				if b[r].Len() < 1 {
					t.Errorf("%s h=%d: band %d is empty", p, h, r)
				}
			}
		}
	}
}

func TestLayout_Wings(t *testing.T) {
	l, err := NewLayout(4096, 2048, Equirectangular, DefaultCalibration())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		column     int
		west, east Span
	}{
		{0, Span{4056, 4096}, Span{512, 552}},
		{3, Span{1496, 1536}, Span{2048, 2088}},
		{7, Span{3544, 3584}, Span{0, 40}},
	}
	for _, tt := range tests {
		if got := l.WestWing(tt.column); got != tt.west {
			t.Errorf("WestWing(%d) = %v, want %v", tt.column, got, tt.west)
		}
		if got := l.EastWing(tt.column); got != tt.east {
			t.Errorf("EastWing(%d) = %v, want %v", tt.column, got, tt.east)
		}
		if got := l.Wing(tt.column, East); got != tt.east {
			t.Errorf("Wing(%d, East) = %v, want %v", tt.column, got, tt.east)
		}
	}
}

func TestLayout_Column(t *testing.T) {
	l, _ := NewLayout(4100, 2048, Equirectangular, DefaultCalibration())
	if got, want := l.Column(7), (Span{3584, 4096}); got != want {
		t.Errorf("Column(7) = %v, want %v", got, want)
	}
	if got, want := l.RowTop(2), 478+505; got != want {
		t.Errorf("RowTop(2) = %d, want %d", got, want)
	}
}

func TestLayout_TileQuad(t *testing.T) {
	l, _ := NewLayout(4096, 2048, Equirectangular, DefaultCalibration())

	tests := []struct {
		row  int
		want image.Quad
	}{
		{0, image.Quad{{X: 256, Y: 0}, {X: 257, Y: 0}, {X: 438, Y: 478}, {X: 74, Y: 478}}},
		{1, image.Quad{{X: 74, Y: 0}, {X: 438, Y: 0}, {X: 512, Y: 505}, {X: 0, Y: 505}}},
		{2, image.Quad{{X: 0, Y: 0}, {X: 512, Y: 0}, {X: 438, Y: 505}, {X: 74, Y: 505}}},
		{3, image.Quad{{X: 74, Y: 0}, {X: 438, Y: 0}, {X: 257, Y: 478}, {X: 256, Y: 478}}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, l.TileQuad(tt.row)); diff != "" {
			t.Errorf("TileQuad(%d) mismatch (-want +got):\n%s", tt.row, diff)
		}
	}
}

func TestLayout_WingQuad(t *testing.T) {
	l, _ := NewLayout(4096, 2048, Equirectangular, DefaultCalibration())

	west := l.WingQuad(0, West, 512)
	wantWest := image.Quad{{X: 0, Y: 12}, {X: 40, Y: 0}, {X: 40, Y: 512}, {X: 0, Y: 472}}
	if diff := cmp.Diff(wantWest, west); diff != "" {
		t.Errorf("WingQuad(0, West) mismatch (-want +got):\n%s", diff)
	}

	east := l.WingQuad(3, East, 512)
	wantEast := image.Quad{{X: 0, Y: 0}, {X: 40, Y: 40}, {X: 40, Y: 500}, {X: 0, Y: 512}}
	if diff := cmp.Diff(wantEast, east); diff != "" {
		t.Errorf("WingQuad(3, East) mismatch (-want +got):\n%s", diff)
	}

	// Short bands never fold the outer edge over itself.
	short := l.WingQuad(0, West, 10)
	if short[0].Y > short[3].Y {
		t.Errorf("WingQuad on a short band folds: top %v below bottom %v", short[0].Y, short[3].Y)
	}
}

func TestLayout_ShearAndPlacement(t *testing.T) {
	l, _ := NewLayout(4096, 2048, Equirectangular, DefaultCalibration())

	if got := l.ShearAngle(0, West); got != 19.51 {
		t.Errorf("ShearAngle(0, West) = %v, want 19.51", got)
	}
	if got := l.ShearAngle(0, East); got != -19.51 {
		t.Errorf("ShearAngle(0, East) = %v, want -19.51", got)
	}
	if got := l.ShearAngle(2, West); got != -8.28 {
		t.Errorf("ShearAngle(2, West) = %v, want -8.28", got)
	}

	tests := []struct {
		row   int
		side  Side
		patch int
		want  int
	}{
		{0, West, 210, 75},
		{0, East, 210, 592 - 210 - 75},
		{1, West, 120, 1},
		{1, East, 120, 592 - 120 - 1},
		{3, West, 210, 75},
	}
	for _, tt := range tests {
		if got := l.WingLeft(tt.row, tt.side, tt.patch); got != tt.want {
			t.Errorf("WingLeft(%d, %v, %d) = %d, want %d", tt.row, tt.side, tt.patch, got, tt.want)
		}
	}
}
