// internal/records/reader.go
package records

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrRecordParse matches every *RecordParseError via errors.Is.
var ErrRecordParse = errors.New("record parse error")

// RecordParseError reports a record that is not a non-negative 64-bit
// integer. Line is 1-based.
type RecordParseError struct {
	Line   int
	Record string
	Err    error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("line %d: record %q: %v", e.Line, e.Record, e.Err)
}

func (e *RecordParseError) Unwrap() error { return e.Err }

func (e *RecordParseError) Is(target error) bool { return target == ErrRecordParse }

// ParseRecord parses one record. Surrounding whitespace is ignored.
func ParseRecord(line int, rec []byte) (uint64, error) {
	s := string(bytes.TrimSpace(rec))
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &RecordParseError{Line: line, Record: s, Err: err}
	}
	return v, nil
}

// Scan reads one integer per line from r and calls emit for each, in order.
// Blank lines are skipped. Cancellation via ctx is checked between lines.
// Return a non-nil error from emit to stop early.
func Scan(ctx context.Context, r io.Reader, emit func(line int, v uint64) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		b := sc.Bytes()
		if len(bytes.TrimSpace(b)) == 0 {
			continue
		}
		v, err := ParseRecord(line, b)
		if err != nil {
			return err
		}
		if err := emit(line, v); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("records scan: %w", err)
	}
	return nil
}

// ReadAll materializes every record of r.
func ReadAll(ctx context.Context, r io.Reader) ([]uint64, error) {
	var out []uint64
	err := Scan(ctx, r, func(_ int, v uint64) error {
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile opens path (see Open) and reads all of its records. Errors are
// prefixed with the path.
func ReadFile(ctx context.Context, path string) ([]uint64, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := ReadAll(ctx, rc)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", DisplayName(path), err)
	}
	return out, nil
}

// DisplayName is the name used for path in messages and reports.
func DisplayName(path string) string {
	if path == Stdin {
		return "<stdin>"
	}
	return path
}
