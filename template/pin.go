package template

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"regexp"
)

// pinnedDate replaces the wall-clock dates pdfcpu stamps into the document
// info dictionary. It has the length of every four-digit-year PDF date.
const pinnedDate = "D:20000101000000+00'00'"

var (
	infoDateRE = regexp.MustCompile(`/(?:CreationDate|ModDate)\s*\((D:[^)]*)\)`)
	fileIDRE   = regexp.MustCompile(`/ID\s*\[\s*<([0-9A-Fa-f]+)>\s*<([0-9A-Fa-f]+)>\s*\]`)
)

// fingerprint hashes the print size and every stamp placed on the
// template. It becomes the document's file identifier.
type fingerprint struct {
	h hash.Hash
}

func newFingerprint(size Size) *fingerprint {
	fp := &fingerprint{h: sha256.New()}
	fmt.Fprintf(fp.h, "%s\x00", size)
	return fp
}

func (fp *fingerprint) add(desc string, png []byte) {
	fmt.Fprintf(fp.h, "%s\x00%d\x00", desc, len(png))
	fp.h.Write(png)
}

func (fp *fingerprint) sum() []byte {
	return fp.h.Sum(nil)
}

// pinDocument overwrites the creation and modification dates and the file
// identifier of a serialized document in place. Every replacement keeps
// the original length so the cross-reference offsets stay valid.
func pinDocument(doc, id []byte) ([]byte, error) {
	out := append([]byte(nil), doc...)

	// Dates of any other length were copied from the template unchanged.
	for _, m := range infoDateRE.FindAllSubmatchIndex(out, -1) {
		if m[3]-m[2] == len(pinnedDate) {
			copy(out[m[2]:m[3]], pinnedDate)
		}
	}

	hexID := hex.EncodeToString(id)
	ids := fileIDRE.FindAllSubmatchIndex(out, -1)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: document has no file identifier", ErrWrite)
	}
	for _, m := range ids {
		for g := 1; g <= 2; g++ {
			start, end := m[2*g], m[2*g+1]
			if end-start > len(hexID) {
				return nil, fmt.Errorf("%w: file identifier of %d digits", ErrWrite, end-start)
			}
			copy(out[start:end], hexID[:end-start])
		}
	}
	return out, nil
}
