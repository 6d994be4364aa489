package vtype

import (
	"fmt"

	"github.com/teambition/rrule-go"
)

// ParseRRule parses an RRULE value ("FREQ=WEEKLY;BYDAY=MO,WE") into
// its structured form. The rule is kept as data only; expanding it
// into concrete occurrence dates is up to the caller (rrule.NewRRule
// does it given the returned option).
func ParseRRule(s string) (*rrule.ROption, error) {
	opt, err := rrule.StrToROption(s)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule %q: %w", s, err)
	}
	return opt, nil
}
