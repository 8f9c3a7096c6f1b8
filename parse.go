package linkage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedPoint is the cause of every ParseError.
var ErrMalformedPoint = errors.New("linkage: malformed point")

// ParseError reports the input line a point could not be read from.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Cause returns the underlying error for github.com/pkg/errors.
func (e *ParseError) Cause() error { return e.Err }

// Unwrap returns the underlying error for the standard errors package.
func (e *ParseError) Unwrap() error { return e.Err }

// ParsePoints reads one comma-separated "x,y,z" triple per line. Surrounding
// whitespace is trimmed and blank lines are skipped. Parsing stops at the
// first malformed line.
func ParsePoints(r io.Reader) ([]Point, error) {
	var points []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := ParsePoint(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "linkage: reading points")
	}
	return points, nil
}

// ParsePoint parses a single "x,y,z" triple.
func ParsePoint(s string) (Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != numAxes {
		return Point{}, errors.Wrapf(ErrMalformedPoint, "want %d coordinates, got %d", numAxes, len(fields))
	}
	var c [numAxes]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, errors.Wrapf(ErrMalformedPoint, "coordinate %d: %v", i, err)
		}
		c[i] = v
	}
	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}
