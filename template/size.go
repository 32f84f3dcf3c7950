package template

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Size identifies a print size with a bundled template.
type Size string

// Supported print sizes.
const (
	A4       Size = "a4"
	USLetter Size = "us-letter"
)

// Sizes returns the supported print sizes.
func Sizes() []Size {
	return []Size{A4, USLetter}
}

// ParseSize parses a print size id, ignoring case and surrounding space.
func ParseSize(s string) (Size, error) {
	size := Size(cases.Fold().String(strings.TrimSpace(s)))
	switch size {
	case A4, USLetter:
		return size, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSize, s)
}

// String returns the size id.
func (s Size) String() string {
	return string(s)
}

// fileName is the template file of the size inside a template file system.
func (s Size) fileName() string {
	return "template-" + string(s) + ".pdf"
}
