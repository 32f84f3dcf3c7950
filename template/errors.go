package template

import (
	"errors"
	"fmt"
)

// Errors reported by the compositor.
var (
	// ErrTemplateLoad is returned when a template is missing, unreadable or
	// has fewer pages than slots.
	ErrTemplateLoad = errors.New("template: cannot load template")

	// ErrWrite is returned when the output document cannot be serialized
	// or written.
	ErrWrite = errors.New("template: cannot write document")

	// ErrUnsupportedSize is returned for an unknown print size. It also
	// matches ErrTemplateLoad.
	ErrUnsupportedSize = fmt.Errorf("%w: unsupported print size", ErrTemplateLoad)

	// ErrStripes is returned when the stripe set does not fill the template.
	ErrStripes = errors.New("template: wrong stripe set")
)
