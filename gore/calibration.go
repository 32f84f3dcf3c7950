package gore

import (
	"fmt"
	"math"

	"github.com/gogpu/paperglobe/internal/registry"
)

// Grid size. A globe is always cut into 8 gores of 4 latitude rows.
const (
	Columns = 8
	Rows    = 4
)

// Corner places one corner of a warped tile along the x-axis, as
// Width*tile_width + Padding*padding + Offset pixels. The y coordinate is
// implied: top corners sit on 0, bottom corners on the row height.
type Corner struct {
	Width   float64 `yaml:"width"`
	Padding float64 `yaml:"padding"`
	Offset  float64 `yaml:"offset"`
}

// X resolves the corner for a tile width and padding.
func (c Corner) X(tileWidth, padding int) float64 {
	return c.Width*float64(tileWidth) + c.Padding*float64(padding) + c.Offset
}

// Calibration is a named table of the empirically tuned constants that
// shape gores and wings. The values are opaque print calibration data.
type Calibration struct {
	Name string `yaml:"name"`

	// RowHeightRatios scale the tile width into each row's height; the
	// gore lens is narrower at the poles.
	RowHeightRatios [Rows]float64 `yaml:"row_height_ratios"`

	// ShearAngles, in degrees, slant west wings; east wings use the
	// negated angle. They are scaled by the tile aspect ratio.
	ShearAngles [Rows]float64 `yaml:"shear_angles"`

	// WingDisplacement moves the outer wing corners vertically, as
	// (top, bottom) multiples of wing_width / tile_ratio.
	WingDisplacement [Rows][2]float64 `yaml:"wing_displacement"`

	// WingFraction and PaddingFraction size the wing width and the tile
	// bevel padding relative to the tile width.
	WingFraction    float64 `yaml:"wing_fraction"`
	PaddingFraction float64 `yaml:"padding_fraction"`

	// TileQuads are the destination corners (top-left, top-right,
	// bottom-right, bottom-left) of each row's tile warp.
	TileQuads [Rows][4]Corner `yaml:"tile_quads"`

	// WingPadded marks rows whose wings are pulled in by the padding.
	WingPadded [Rows]bool `yaml:"wing_padded"`

	// WingNudge is the extra horizontal inset of both wings, in pixels.
	WingNudge int `yaml:"wing_nudge"`
}

// DefaultCalibrationName names the built-in calibration.
const DefaultCalibrationName = "paperglobe-0.1"

// DefaultCalibration returns the built-in calibration table.
func DefaultCalibration() Calibration {
	return Calibration{
		Name:            DefaultCalibrationName,
		RowHeightRatios: [Rows]float64{0.935, 0.988, 0.988, 0.935},
		ShearAngles:     [Rows]float64{19.51, 8.28, -8.28, -19.51},
		WingDisplacement: [Rows][2]float64{
			{0.30, 1},
			{0.28, 0.65},
			{0.65, 0.28},
			{1, 0.30},
		},
		WingFraction:    0.08,
		PaddingFraction: 0.146,
		TileQuads: [Rows][4]Corner{
			// North pole: the top edge collapses to the middle.
			{{Width: 0.5}, {Width: 0.5, Offset: 1}, {Width: 1, Padding: -1}, {Padding: 1}},
			{{Padding: 1}, {Width: 1, Padding: -1}, {Width: 1}, {}},
			{{}, {Width: 1}, {Width: 1, Padding: -1}, {Padding: 1}},
			// South pole: the bottom edge collapses to the middle.
			{{Padding: 1}, {Width: 1, Padding: -1}, {Width: 0.5, Offset: 1}, {Width: 0.5}},
		},
		WingPadded: [Rows]bool{true, false, false, true},
		WingNudge:  1,
	}
}

// Validate checks that the table can produce non-degenerate geometry.
func (c Calibration) Validate() error {
	for r, ratio := range c.RowHeightRatios {
		if !(ratio > 0) || math.IsInf(ratio, 0) {
			return fmt.Errorf("%w: row %d height ratio %v", ErrInvalidCalibration, r, ratio)
		}
	}
	for r, d := range c.WingDisplacement {
		if d[0] < 0 || d[1] < 0 {
			return fmt.Errorf("%w: row %d wing displacement %v", ErrInvalidCalibration, r, d)
		}
	}
	for r, a := range c.ShearAngles {
		if math.Abs(a) >= 90 {
			return fmt.Errorf("%w: row %d shear angle %v", ErrInvalidCalibration, r, a)
		}
	}
	if c.WingFraction < 0 || c.WingFraction >= 0.5 {
		return fmt.Errorf("%w: wing fraction %v", ErrInvalidCalibration, c.WingFraction)
	}
	if c.PaddingFraction < 0 || c.PaddingFraction >= 0.5 {
		return fmt.Errorf("%w: padding fraction %v", ErrInvalidCalibration, c.PaddingFraction)
	}
	if c.WingNudge < 0 {
		return fmt.Errorf("%w: wing nudge %d", ErrInvalidCalibration, c.WingNudge)
	}
	return nil
}

var calibrations = registry.New[Calibration]("calibration")

func init() {
	RegisterCalibration(DefaultCalibration())
}

// RegisterCalibration makes a calibration available by name. It panics on
// a duplicate or empty name.
func RegisterCalibration(c Calibration) {
	calibrations.Register(c.Name, c)
}

// LookupCalibration returns the calibration registered under name.
func LookupCalibration(name string) (Calibration, error) {
	c, err := calibrations.Lookup(name)
	if err != nil {
		return Calibration{}, fmt.Errorf("%w: %w", ErrInvalidCalibration, err)
	}
	return c, nil
}

// Calibrations lists the registered calibration names.
func Calibrations() []string {
	return calibrations.Names()
}
