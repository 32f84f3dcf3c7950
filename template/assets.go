package template

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.pdf
var assets embed.FS

// Assets returns the bundled templates, one template-<size>.pdf per size.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
