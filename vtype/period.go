package vtype

import (
	"fmt"
	"strings"
	"time"
)

// Period is a span of time, as used by FREEBUSY and VALUE=PERIOD
// values. The duration form (start/PT5H) is resolved into an explicit
// end at parse time.
type Period struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the period.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// ParsePeriod parses "start/end" or "start/duration", e.g.
// "19970101T180000Z/19970102T070000Z" or "19970101T180000Z/PT5H30M".
func (d Decoder) ParsePeriod(s string) (Period, error) {
	startText, endText, ok := strings.Cut(s, "/")
	if !ok {
		return Period{}, fmt.Errorf(`period %q has no "/" separator`, s)
	}

	start, err := d.ParseDateTime(startText, "")
	if err != nil {
		return Period{}, fmt.Errorf("invalid period start: %w", err)
	}

	if strings.HasPrefix(strings.TrimLeft(endText, "+-"), "P") {
		dur, err := ParseDuration(endText)
		if err != nil {
			return Period{}, fmt.Errorf("invalid period duration: %w", err)
		}
		return Period{Start: start, End: start.Add(dur)}, nil
	}

	end, err := d.ParseDateTime(endText, "")
	if err != nil {
		return Period{}, fmt.Errorf("invalid period end: %w", err)
	}
	return Period{Start: start, End: end}, nil
}
