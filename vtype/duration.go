package vtype

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// durationRE matches the RFC 5545 dur-value grammar. Weeks are
// exclusive with the day/time form, and the time part always follows
// the day part, so "P1W2D" and "PT10S12M" do not match.
var durationRE = regexp.MustCompile(
	`^(?P<sign>[+-])?P(?:(?:(?P<D>\d+)D)?(?:T(?:(?P<H>\d+)H)?(?:(?P<M>\d+)M)?(?:(?P<S>\d+)S)?)?|(?P<W>\d+)W)$`)

var durationUnits = map[string]time.Duration{
	"W": 7 * 24 * time.Hour,
	"D": 24 * time.Hour,
	"H": time.Hour,
	"M": time.Minute,
	"S": time.Second,
}

// ParseDuration parses an ISO-8601 duration as used by DURATION and
// TRIGGER values, e.g. "P15DT5H0M20S", "-PT30M", "P7W".
func ParseDuration(s string) (time.Duration, error) {
	m := durationRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var dur time.Duration
	for name, unit := range durationUnits {
		field := m[durationRE.SubexpIndex(name)]
		if field == "" {
			continue
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		dur += time.Duration(n) * unit
	}

	if m[durationRE.SubexpIndex("sign")] == "-" {
		dur = -dur
	}
	return dur, nil
}
