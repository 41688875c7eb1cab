package trajio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Errors returned by the readers.
var (
	ErrInvalidColumn = errors.New("trajio: column must be non-negative")
	ErrMissingColumn = errors.New("trajio: row has too few columns")
	ErrNoSamples     = errors.New("trajio: no samples")
)

// ParseError reports a malformed row.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trajio: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// maxLineSize bounds a single row; wide multi-column dumps exceed the
// bufio.Scanner default.
const maxLineSize = 1 << 20

// ReadFile opens path and reads the trajectory stored in column.
func ReadFile(path string, column int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, column)
}

// Read parses one sample per row from column of r.
func Read(r io.Reader, column int) ([]float64, error) {
	if column < 0 {
		return nil, ErrInvalidColumn
	}

	var (
		out  []float64
		line int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		fields := strings.Fields(s)
		if column >= len(fields) {
			return nil, &ParseError{Line: line, Err: ErrMissingColumn}
		}

		v, err := strconv.ParseFloat(fields[column], 64)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trajio: read: %w", err)
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}
	return out, nil
}

// WriteSeries writes x one value per line.
func WriteSeries(w io.Writer, x []float64) error {
	bw := bufio.NewWriter(w)

	var b []byte
	for _, v := range x {
		b = strconv.AppendFloat(b[:0], v, 'g', -1, 64)
		b = append(b, '\n')
		if _, err := bw.Write(b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteMSD writes one "time value" row per lag, where row i has time
// (i+1)*dt.
func WriteMSD(w io.Writer, dt float64, d []float64) error {
	bw := bufio.NewWriter(w)

	var b []byte
	for i, v := range d {
		b = strconv.AppendFloat(b[:0], float64(i+1)*dt, 'g', -1, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
		b = append(b, '\n')
		if _, err := bw.Write(b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CreateFile creates path and hands it to write, closing the file
// afterwards. The close error is reported when write succeeded.
func CreateFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
