package tracelog

import (
	"NetSyncDiff/internal/model"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// HeaderSentinel is the first byte of every timestep header line.
const HeaderSentinel = 't'

// maxLineSize bounds a single log line.
const maxLineSize = 1 << 20

var (
	// ErrParse is wrapped by every error caused by malformed log content.
	ErrParse = errors.New("malformed trace log")
	// ErrNoHeader is returned when a data line appears before any header line.
	ErrNoHeader = fmt.Errorf("%w: data line before first timestep header", ErrParse)
)

// ParseError reports where a log failed to parse.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.Source, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader reads a trace from a log file.
type Reader struct {
	file *os.File
	name string
}

// NewReader opens the log file at filePath.
func NewReader(filePath string) (*Reader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{file: file, name: filePath}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadTrace consumes the whole file and returns the parsed trace.
func (r *Reader) ReadTrace() (model.Trace, error) {
	return parse(r.file, r.name)
}

// Load opens, parses and closes the log at filePath.
func Load(filePath string) (model.Trace, error) {
	r, err := NewReader(filePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ReadTrace()
}

// Parse reads a full trace from in.
func Parse(in io.Reader) (model.Trace, error) {
	return parse(in, "<input>")
}

func parse(in io.Reader, source string) (model.Trace, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var trace model.Trace
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == HeaderSentinel {
			trace = append(trace, model.Block{})
			continue
		}

		fail := func(err error) error {
			return &ParseError{Source: source, Line: lineNo, Text: line, Err: err}
		}
		if len(trace) == 0 {
			return nil, fail(ErrNoHeader)
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, fail(err)
		}
		last := len(trace) - 1
		trace[last] = append(trace[last], p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	return trace, nil
}

// ParsePoint parses a single "x,y" data line.
func ParsePoint(line string) (model.Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return model.Point{}, fmt.Errorf("%w: expected 2 comma-separated values, got %d", ErrParse, len(fields))
	}

	var coords [2]float64
	for i, f := range fields {
		v, err := parseFloat(strings.TrimSpace(f))
		if err != nil {
			return model.Point{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		coords[i] = v
	}

	return model.Point{X: coords[0], Y: coords[1]}, nil
}

// parseFloat accepts decimal literals, with optional exponent, and the
// inf/nan spellings. Hexadecimal floats and digit-separating underscores are
// rejected.
func parseFloat(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("hexadecimal value %q not supported", tok)
	}
	return strconv.ParseFloat(tok, 64)
}
