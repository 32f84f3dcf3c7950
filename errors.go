package paperglobe

import (
	"errors"

	"github.com/gogpu/paperglobe/gore"
	"github.com/gogpu/paperglobe/template"
)

// Sentinel errors. Every failure returned by Generate wraps one of them.
var (
	ErrInvalidImage          = gore.ErrInvalidImage
	ErrUnsupportedProjection = gore.ErrUnsupportedProjection
	ErrTemplateLoad          = template.ErrTemplateLoad
	ErrWrite                 = template.ErrWrite
)

// Kind classifies a failure for the caller.
type Kind int

// Failure kinds.
const (
	KindUnknown Kind = iota
	KindInvalidImage
	KindUnsupportedProjection
	KindTemplateLoad
	KindWrite
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidImage:
		return "invalid-image"
	case KindUnsupportedProjection:
		return "unsupported-projection"
	case KindTemplateLoad:
		return "template-load"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err, or KindUnknown for nil and foreign errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidImage):
		return KindInvalidImage
	case errors.Is(err, ErrUnsupportedProjection):
		return KindUnsupportedProjection
	case errors.Is(err, ErrTemplateLoad):
		return KindTemplateLoad
	case errors.Is(err, ErrWrite):
		return KindWrite
	default:
		return KindUnknown
	}
}
