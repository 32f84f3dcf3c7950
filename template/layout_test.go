package template

import (
	"errors"
	"math"
	"testing"
)

func TestSlot(t *testing.T) {
	tests := []struct {
		i        int
		wantPage int
		wantLeft bool
	}{
		{0, 0, true},
		{1, 0, false},
		{2, 1, true},
		{5, 2, false},
		{6, 3, true},
		{7, 3, false},
	}
	for _, tt := range tests {
		page, left := Slot(tt.i)
		if page != tt.wantPage || left != tt.wantLeft {
			t.Errorf("Slot(%d) = (%d, %v), want (%d, %v)", tt.i, page, left, tt.wantPage, tt.wantLeft)
		}
	}
}

func TestLayout_Rect(t *testing.T) {
	l := DefaultLayout()
	// A 50x200 stripe is 710.9 pt tall and 177.725 pt wide.
	const half = 88.8625

	tests := []struct {
		name  string
		size  Size
		i     int
		wantX float64
		wantY float64
		page  int
	}{
		{"a4 left", A4, 0, 158.9 - half, 65.5, 0},
		{"a4 right", A4, 1, 436.2 - half, 65.5, 0},
		{"a4 last", A4, 7, 436.2 - half, 65.5, 3},
		{"letter left", USLetter, 4, 167.2 - half, 40.5, 2},
		{"letter right", USLetter, 3, 444.6 - half, 40.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := l.Rect(tt.size, tt.i, 50, 200)
			if err != nil {
				t.Fatalf("Rect error = %v", err)
			}
			if r.Page != tt.page {
				t.Errorf("Page = %d, want %d", r.Page, tt.page)
			}
			if math.Abs(r.X-tt.wantX) > 1e-9 || r.Y != tt.wantY {
				t.Errorf("origin = (%v, %v), want (%v, %v)", r.X, r.Y, tt.wantX, tt.wantY)
			}
			if math.Abs(r.Width-2*half) > 1e-9 || r.Height != 710.9 {
				t.Errorf("size = %vx%v, want %vx710.9", r.Width, r.Height, 2*half)
			}
		})
	}
}

func TestLayout_RectErrors(t *testing.T) {
	l := DefaultLayout()
	if _, err := l.Rect("a3", 0, 10, 10); !errors.Is(err, ErrTemplateLoad) {
		t.Errorf("Rect(a3) error = %v, want ErrTemplateLoad", err)
	}
	if _, err := l.Rect(A4, 8, 10, 10); !errors.Is(err, ErrStripes) {
		t.Errorf("Rect(slot 8) error = %v, want ErrStripes", err)
	}
	if _, err := l.Rect(A4, 0, 0, 10); !errors.Is(err, ErrStripes) {
		t.Errorf("Rect(empty stripe) error = %v, want ErrStripes", err)
	}
}

func TestRect_Bottom(t *testing.T) {
	r := Rect{Y: 65.5, Height: 710.9}
	if got := r.Bottom(841.89); math.Abs(got-65.49) > 1e-9 {
		t.Errorf("Bottom = %v, want 65.49", got)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"a4", A4, false},
		{" US-Letter ", USLetter, false},
		{"a3", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && (!errors.Is(err, ErrUnsupportedSize) || !errors.Is(err, ErrTemplateLoad)) {
			t.Errorf("ParseSize(%q) error = %v, want ErrUnsupportedSize and ErrTemplateLoad", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutRegistry(t *testing.T) {
	if _, err := LookupLayout(DefaultLayoutName); err != nil {
		t.Errorf("LookupLayout(default) error = %v", err)
	}
	if _, err := LookupLayout("nope"); !errors.Is(err, ErrTemplateLoad) {
		t.Errorf("LookupLayout(nope) error = %v, want ErrTemplateLoad", err)
	}
}

func TestLayout_Validate(t *testing.T) {
	l := DefaultLayout()
	l.StripeHeight = 0
	if err := l.Validate(); err == nil {
		t.Error("Validate accepted a zero stripe height")
	}

	l = DefaultLayout()
	l.Sheets[A4] = Sheet{Centers: [SlotsPerPage]float64{1, 2}, Top: 1}
	if err := l.Validate(); err == nil {
		t.Error("Validate accepted a sheet without page size")
	}
}
