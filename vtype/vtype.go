// Package vtype interprets raw property values as typed ones:
// calendar dates, date-times, durations, periods, and recurrence
// rules. It implements the vobj.ValueDecoder capability, keeping the
// core parser free of any date or timezone dependency.
//
// Interpretation is best-effort by design: a value this package cannot
// make sense of stays a raw string on the property, and the caller may
// retry with a Decoder carrying different context (for example another
// default timezone).
package vtype

import (
	"strings"
	"time"

	"github.com/govobj/govobj/vobj"
)

// Decoder interprets property values. The zero value is ready to use
// and treats floating date-times as local time.
type Decoder struct {
	// Location is the timezone applied to date-time values that carry
	// neither a Z suffix nor a TZID parameter. Nil means time.Local.
	Location *time.Location
}

// dateTimeProps take a DATE-TIME value when no VALUE parameter says
// otherwise (RFC 5545 section 3.8).
var dateTimeProps = map[string]bool{
	"DTSTART":       true,
	"DTEND":         true,
	"DTSTAMP":       true,
	"DUE":           true,
	"COMPLETED":     true,
	"CREATED":       true,
	"LAST-MODIFIED": true,
	"RECURRENCE-ID": true,
	"EXDATE":        true,
	"RDATE":         true,
}

// durationProps default to a DURATION value. TRIGGER switches to
// DATE-TIME via VALUE=DATE-TIME, which is dispatched before this set
// is consulted.
var durationProps = map[string]bool{
	"DURATION": true,
	"TRIGGER":  true,
}

// DecodeValue implements vobj.ValueDecoder. It returns (nil, nil) for
// properties it does not interpret.
func (d Decoder) DecodeValue(p *vobj.Property) (any, error) {
	name := strings.ToUpper(p.Name)
	valueType := strings.ToUpper(p.ParamValue("VALUE"))

	switch {
	case name == "RRULE" || name == "EXRULE":
		return ParseRRule(p.Value)

	case valueType == "DURATION", valueType == "" && durationProps[name]:
		return ParseDuration(p.Value)

	case valueType == "PERIOD", valueType == "" && name == "FREEBUSY":
		return d.ParsePeriod(p.Value)

	case valueType == "DATE":
		return d.decodeDate(p)

	case valueType == "DATE-TIME", valueType == "" && dateTimeProps[name]:
		return d.decodeDateTime(p)
	}
	return nil, nil
}

func (d Decoder) decodeDate(p *vobj.Property) (any, error) {
	// Some producers declare VALUE=DATE but write a full date-time.
	if len(p.Value) == len(layoutDateTime) || strings.HasSuffix(p.Value, "Z") {
		t, err := d.ParseDateTime(p.Value, p.ParamValue("TZID"))
		if err != nil {
			return nil, err
		}
		return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
	}
	return ParseDate(p.Value)
}

func (d Decoder) decodeDateTime(p *vobj.Property) (any, error) {
	// A bare date where a date-time is expected stays a date.
	if len(p.Value) == len(layoutDate) {
		return ParseDate(p.Value)
	}
	return d.ParseDateTime(p.Value, p.ParamValue("TZID"))
}

func (d Decoder) location() *time.Location {
	if d.Location != nil {
		return d.Location
	}
	return time.Local
}
