package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

var ErrUnsupportedInput = errors.New("unsupported input format")

// Sniff classifies an input file by content. Zip archives are walked by the
// batch pipeline, unrecognized content is assumed to be manuscript XML.
// Known binary formats (images, pdf and the like) are rejected here so the
// permissive XML reader never sees them.
func Sniff(path string) (archive bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, 262)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buf = buf[:n]

	t, err := filetype.Match(buf)
	if err != nil {
		return false, err
	}
	switch {
	case t == matchers.TypeZip:
		return true, nil
	case t == filetype.Unknown:
		// text, hopefully a manuscript
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s looks like %s", ErrUnsupportedInput, path, t.MIME.Value)
	}
}
