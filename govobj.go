// Package govobj parses iCalendar (RFC 5545) and vCard (RFC 6350)
// streams into trees of components, properties, and parameters.
//
// Parsing is streaming and pull-based: a Decoder yields one finished
// root component at a time, so a structural error late in a stream
// never discards roots that already parsed. The grammar layer is
// format-agnostic; format profiles supply the root component name and
// the list-valued property names. Typed values (dates, durations,
// recurrence rules) are an optional capability provided by the vtype
// subpackage and injected with WithValueDecoder.
//
// Example:
//
//	dec := govobj.NewICalDecoder(f, govobj.WithValueDecoder(vtype.Decoder{}))
//	for cal, err := range dec.All() {
//	    if err != nil {
//	        return err
//	    }
//	    for _, event := range cal.Children("VEVENT") {
//	        fmt.Println(event.Prop("SUMMARY").Value)
//	    }
//	}
package govobj

import (
	"log/slog"

	"github.com/govobj/govobj/vobj"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-line tracing (logical lines, component open/close).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// Option configures a Decoder.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	decoder vobj.ValueDecoder
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithValueDecoder installs a semantic value decoder. Properties it
// interprets successfully carry the result in Property.Decoded; ones
// it fails on keep their raw text. vtype.Decoder is the standard
// implementation.
func WithValueDecoder(d vobj.ValueDecoder) Option {
	return func(c *config) { c.decoder = d }
}
