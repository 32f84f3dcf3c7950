package paperglobe

import (
	"path/filepath"
	"strings"

	"github.com/gogpu/paperglobe/template"
)

// maxStemRunes bounds the source name carried into the output name.
const maxStemRunes = 40

// OutputName returns the default output path for source: <stem>_<size>.pdf
// in the source's directory, with the stem cut to 40 characters.
func OutputName(source string, size template.Size) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if r := []rune(stem); len(r) > maxStemRunes {
		stem = string(r[:maxStemRunes])
	}
	return filepath.Join(filepath.Dir(source), stem+"_"+size.String()+".pdf")
}
