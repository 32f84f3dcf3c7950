package gore

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Projection identifies the cylindrical projection of a source map.
type Projection string

// Supported projections.
const (
	Equirectangular Projection = "equirectangular"
	Mercator        Projection = "mercator"
	GallStereo      Projection = "gall-stereo"
)

// Profile holds the fraction of the image height covered by each latitude
// band, north to south. The fractions sum to 1.
type Profile [Rows]float64

// profiles is the fixed projection table.
var profiles = map[Projection]Profile{
	Equirectangular: {0.25, 0.25, 0.25, 0.25},
	Mercator:        {0.36, 0.14, 0.14, 0.36},
	GallStereo:      {0.295, 0.205, 0.205, 0.295},
}

// Projections returns the supported projections in documentation order.
func Projections() []Projection {
	return []Projection{Equirectangular, Mercator, GallStereo}
}

// ProfileOf returns the band profile of p.
func ProfileOf(p Projection) (Profile, error) {
	prof, ok := profiles[p]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedProjection, string(p))
	}
	return prof, nil
}

// ParseProjection parses a projection id. Matching ignores case and
// surrounding space.
func ParseProjection(s string) (Projection, error) {
	p := Projection(cases.Fold().String(strings.TrimSpace(s)))
	if _, ok := profiles[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProjection, s)
	}
	return p, nil
}

// String returns the projection id.
func (p Projection) String() string {
	return string(p)
}
