package govobj

import (
	"errors"
	"io"
	"iter"
	"log/slog"

	"github.com/govobj/govobj/internal/builder"
	"github.com/govobj/govobj/internal/contentline"
	"github.com/govobj/govobj/internal/liner"
	"github.com/govobj/govobj/vobj"
)

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}

// Decoder streams root components out of one input. It is stateful
// over the input cursor and the nesting stack: it is not restartable
// and must not be shared across goroutines. After Next returns a
// non-EOF error the Decoder is spent; further calls return the same
// error.
type Decoder struct {
	lines   *liner.Reader
	builder *builder.Builder
	err     error
}

// NewDecoder returns a Decoder applying the given format profile.
// Most callers want NewICalDecoder or NewVCardDecoder.
func NewDecoder(r io.Reader, profile vobj.Profile, opts ...Option) *Decoder {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger != nil {
		logger = logger.With(slog.String("format", profile.Name))
	}
	return &Decoder{
		lines:   liner.New(r, componentLogger(logger, "liner")),
		builder: builder.New(profile, cfg.decoder, componentLogger(logger, "builder")),
	}
}

// NewICalDecoder returns a Decoder for iCalendar input: VCALENDAR
// roots, one per calendar object, tolerating several per stream.
func NewICalDecoder(r io.Reader, opts ...Option) *Decoder {
	return NewDecoder(r, vobj.ICalendar(), opts...)
}

// NewVCardDecoder returns a Decoder for vCard input: one VCARD root
// per contact, commonly several back-to-back in one stream.
func NewVCardDecoder(r io.Reader, opts ...Option) *Decoder {
	return NewDecoder(r, vobj.VCard(), opts...)
}

// Next reads input until the next root component closes and returns
// it. It returns io.EOF at the clean end of input. Any other error is
// terminal: tokenization and nesting failures do not resynchronize.
func (d *Decoder) Next() (*vobj.Component, error) {
	if d.err != nil {
		return nil, d.err
	}

	for {
		ln, err := d.lines.Next()
		if err == io.EOF {
			if ferr := d.builder.Finish(); ferr != nil {
				d.err = ferr
				return nil, ferr
			}
			d.err = io.EOF
			return nil, io.EOF
		}
		if err != nil {
			d.err = err
			return nil, err
		}

		cl, err := contentline.Parse(ln)
		if err != nil {
			d.err = err
			return nil, err
		}

		root, err := d.builder.Feed(cl)
		if err != nil {
			d.err = err
			return nil, err
		}
		if root != nil {
			return root, nil
		}
	}
}

// All returns an iterator over the root components of the input.
// Iteration stops at end of input, after yielding the first error, or
// when the caller breaks; a partially open component at that point is
// discarded.
func (d *Decoder) All() iter.Seq2[*vobj.Component, error] {
	return func(yield func(*vobj.Component, error) bool) {
		for {
			root, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(root, err) || err != nil {
				return
			}
		}
	}
}

// ParseICal reads an entire iCalendar stream. On error the returned
// document still holds every root component that completed before the
// failure.
func ParseICal(r io.Reader, opts ...Option) (*vobj.Document, error) {
	return parseAll(NewICalDecoder(r, opts...))
}

// ParseVCard reads an entire vCard stream. On error the returned
// document still holds every contact that completed before the
// failure.
func ParseVCard(r io.Reader, opts ...Option) (*vobj.Document, error) {
	return parseAll(NewVCardDecoder(r, opts...))
}

func parseAll(d *Decoder) (*vobj.Document, error) {
	doc := &vobj.Document{}
	for root, err := range d.All() {
		if err != nil {
			return doc, err
		}
		doc.Components = append(doc.Components, root)
	}
	return doc, nil
}
