package template

import (
	"fmt"

	"github.com/gogpu/paperglobe/internal/registry"
)

// Template geometry. Every template has the same number of pages and slots.
const (
	Pages        = 4
	SlotsPerPage = 2
	Slots        = Pages * SlotsPerPage
)

// Sheet is the slot geometry of one print size, in PDF points.
type Sheet struct {
	// Centers are the x centres of the left and right slots.
	Centers [SlotsPerPage]float64 `yaml:"centers"`

	// Top is the distance from the top of the page to the top of a stripe.
	Top float64 `yaml:"top"`

	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`
}

// Layout is a named table placing stripes on the template pages.
type Layout struct {
	Name string `yaml:"name"`

	// StripeHeight is the printed height of every stripe.
	StripeHeight float64 `yaml:"stripe_height"`

	Sheets map[Size]Sheet `yaml:"sheets"`
}

// DefaultLayoutName names the built-in layout.
const DefaultLayoutName = "paperglobe-0.1"

// DefaultLayout returns the layout matching the bundled templates.
func DefaultLayout() Layout {
	return Layout{
		Name:         DefaultLayoutName,
		StripeHeight: 710.9,
		Sheets: map[Size]Sheet{
			A4: {
				Centers:    [SlotsPerPage]float64{158.9, 436.2},
				Top:        65.5,
				PageWidth:  595.28,
				PageHeight: 841.89,
			},
			USLetter: {
				Centers:    [SlotsPerPage]float64{167.2, 444.6},
				Top:        40.5,
				PageWidth:  612,
				PageHeight: 792,
			},
		},
	}
}

// Rect is a placement rectangle in PDF points. Y is measured from the top
// of the page.
type Rect struct {
	Page          int // 0-based
	X, Y          float64
	Width, Height float64
}

// Bottom returns the distance from the bottom of a page of the given height
// to the bottom of the rectangle.
func (r Rect) Bottom(pageHeight float64) float64 {
	return pageHeight - r.Y - r.Height
}

// Slot returns the page of stripe i and whether it takes the left slot.
func Slot(i int) (page int, left bool) {
	return i / SlotsPerPage, i%SlotsPerPage == 0
}

// Rect returns where stripe i of w x h pixels lands on the given size.
// The stripe keeps its aspect ratio at StripeHeight points tall.
func (l Layout) Rect(size Size, i, w, h int) (Rect, error) {
	sheet, ok := l.Sheets[size]
	if !ok {
		return Rect{}, fmt.Errorf("%w: %q in layout %q", ErrUnsupportedSize, string(size), l.Name)
	}
	if i < 0 || i >= Slots {
		return Rect{}, fmt.Errorf("%w: slot %d", ErrStripes, i)
	}
	if w <= 0 || h <= 0 {
		return Rect{}, fmt.Errorf("%w: stripe %d is %dx%d", ErrStripes, i, w, h)
	}

	page, left := Slot(i)
	center := sheet.Centers[1]
	if left {
		center = sheet.Centers[0]
	}
	half := l.StripeHeight / float64(h) * float64(w) / 2
	return Rect{
		Page:   page,
		X:      center - half,
		Y:      sheet.Top,
		Width:  2 * half,
		Height: l.StripeHeight,
	}, nil
}

// Validate checks that the layout can place stripes.
func (l Layout) Validate() error {
	if !(l.StripeHeight > 0) {
		return fmt.Errorf("%w: layout %q stripe height %v", ErrTemplateLoad, l.Name, l.StripeHeight)
	}
	for size, s := range l.Sheets {
		if !(s.PageWidth > 0) || !(s.PageHeight > 0) {
			return fmt.Errorf("%w: layout %q %s page %vx%v", ErrTemplateLoad, l.Name, size, s.PageWidth, s.PageHeight)
		}
	}
	return nil
}

var layouts = registry.New[Layout]("layout")

func init() {
	RegisterLayout(DefaultLayout())
}

// RegisterLayout makes a layout available by name. It panics on a
// duplicate or empty name.
func RegisterLayout(l Layout) {
	layouts.Register(l.Name, l)
}

// LookupLayout returns the layout registered under name.
func LookupLayout(name string) (Layout, error) {
	l, err := layouts.Lookup(name)
	if err != nil {
		return Layout{}, fmt.Errorf("%w: %w", ErrTemplateLoad, err)
	}
	return l, nil
}

// Layouts lists the registered layout names.
func Layouts() []string {
	return layouts.Names()
}
