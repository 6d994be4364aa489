// Package liner reads physical lines from a byte stream and unfolds
// folded continuations into logical lines.
//
// Physical lines are delimited by CRLF; bare LF is tolerated since
// plenty of real-world producers emit it. A physical line starting
// with a single space or horizontal tab continues the previous logical
// line with that one whitespace character stripped. Blank lines are
// skipped. Reading is forward-only and streaming; logical lines have
// no length limit beyond available memory.
package liner

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/govobj/govobj/vobj"
)

// LevelTrace matches govobj.LevelTrace for per-line logging.
const LevelTrace = slog.Level(-8)

var ctx = context.Background()

// Line is one unfolded logical line and the 1-based number of the
// physical line it started on.
type Line struct {
	Text   string
	Number int
}

// Reader produces logical lines from an io.Reader.
type Reader struct {
	r      *bufio.Reader
	logger *slog.Logger

	num     int // physical lines consumed so far
	pending *physLine
	eof     bool
}

type physLine struct {
	text   string
	number int
}

// New returns a Reader over r. Pass nil for logger to disable logging.
func New(r io.Reader, logger *slog.Logger) *Reader {
	return &Reader{
		r:      bufio.NewReader(r),
		logger: logger,
	}
}

// Next returns the next logical line. It returns io.EOF once the
// source is exhausted, and the source's own error verbatim if reading
// fails mid-stream.
func (r *Reader) Next() (Line, error) {
	// Find the first non-blank physical line of the next logical line.
	var first physLine
	for {
		ln, err := r.readPhysical()
		if err != nil {
			return Line{}, err
		}
		if ln.text != "" {
			first = ln
			break
		}
	}

	if isContinuation(first.text) {
		return Line{}, vobj.NewLineError(first.number, vobj.ErrDanglingContinuation)
	}

	text := first.text
	var joined *strings.Builder

	// Absorb continuations. Blank lines in between do not end the
	// logical line; a folded line may be separated from its
	// continuation by stray empty lines.
	for {
		ln, err := r.readPhysical()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Line{}, err
		}
		if ln.text == "" {
			continue
		}
		if !isContinuation(ln.text) {
			r.pending = &ln
			break
		}
		if joined == nil {
			joined = &strings.Builder{}
			joined.WriteString(text)
		}
		joined.WriteString(ln.text[1:])
	}
	if joined != nil {
		text = joined.String()
	}

	if r.logger != nil && r.logger.Enabled(ctx, LevelTrace) {
		r.logger.LogAttrs(ctx, LevelTrace, "logical line",
			slog.Int("line", first.number),
			slog.Int("len", len(text)))
	}
	return Line{Text: text, Number: first.number}, nil
}

// readPhysical returns the next physical line with its terminator and
// any trailing CR stripped.
func (r *Reader) readPhysical() (physLine, error) {
	if r.pending != nil {
		ln := *r.pending
		r.pending = nil
		return ln, nil
	}
	if r.eof {
		return physLine{}, io.EOF
	}

	text, err := r.r.ReadString('\n')
	if err == io.EOF {
		r.eof = true
		if text == "" {
			return physLine{}, io.EOF
		}
		err = nil
	}
	if err != nil {
		return physLine{}, err
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	r.num++
	return physLine{text: text, number: r.num}, nil
}

func isContinuation(s string) bool {
	return s[0] == ' ' || s[0] == '\t'
}
