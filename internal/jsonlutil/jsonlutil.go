// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

const bufBytes = 64 << 10

// Start runs a goroutine that writes one JSON value per line for every T
// received. encode converts a T to its wire form and encodes it; ignore
// names errors (such as a closed pipe) that end output without failing.
//
// The first error stops encoding but not receiving: the rest of the input is
// dropped, and the error channel yields once after in is closed.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, ignore func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, bufBytes)
		enc := json.NewEncoder(bw)

		var err error
		for v := range in {
			if err == nil {
				err = encode(enc, v)
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && ignore(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
