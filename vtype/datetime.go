package vtype

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	layoutDate        = "20060102"
	layoutDateTime    = "20060102T150405"
	layoutDateTimeUTC = "20060102T150405Z"
)

// vCard 4.0 allows dates with the year omitted (--MMDD), used for
// anniversaries and birthdays.
var partialDateRE = regexp.MustCompile(`^--(\d{2})(\d{2})$`)

// Date is a calendar date with no time of day. Year 0 marks a vCard
// partial date (--MMDD).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	if d.Year == 0 {
		return fmt.Sprintf("--%02d%02d", d.Month, d.Day)
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses a DATE value: YYYYMMDD, or the vCard partial form
// --MMDD.
func ParseDate(s string) (Date, error) {
	if m := partialDateRE.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return Date{}, fmt.Errorf("invalid partial date %q", s)
		}
		return Date{Month: time.Month(month), Day: day}, nil
	}

	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// ParseDateTime parses a DATE-TIME value in its three RFC 5545 forms:
// floating local time, UTC (Z suffix), and a time qualified by the
// tzid parameter. Timezone names resolve through the platform tz
// database via time.LoadLocation.
func (d Decoder) ParseDateTime(value, tzid string) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		return time.Parse(layoutDateTimeUTC, value)
	}

	loc := d.location()
	if tzid != "" {
		var err error
		if loc, err = time.LoadLocation(tzid); err != nil {
			return time.Time{}, fmt.Errorf("unknown TZID %q: %w", tzid, err)
		}
	}
	return time.ParseInLocation(layoutDateTime, value, loc)
}
