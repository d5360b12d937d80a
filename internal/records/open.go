// internal/records/open.go
package records

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// input chains a decoder in front of the underlying file.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var errs []error
	for _, c := range in.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Open returns a reader for path ("-" = stdin). Gzip data is recognised by
// its magic bytes, so compressed stdin works as well as .gz files.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if path != Stdin {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReader(src)
	if head, _ := br.Peek(len(gzipMagic)); !bytes.Equal(head, gzipMagic) {
		return &input{Reader: br, closers: []io.Closer{src}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return &input{Reader: gr, closers: []io.Closer{gr, src}}, nil
}
