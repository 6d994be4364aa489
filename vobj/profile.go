package vobj

// Profile is the format policy a parser applies on top of the generic
// grammar: which root component a stream must open with, and which
// property names take comma-delimited value lists (the RFCs allow
// unescaped commas inside some single-valued text fields, so list
// splitting is an allow-list, never a generic comma scan).
type Profile struct {
	// Name identifies the format in log output.
	Name string

	// Root is the component name every top-level BEGIN must carry,
	// compared case-insensitively. Empty means any root is accepted.
	Root string

	// MultiValue lists upper-cased property names whose value is split
	// on unescaped commas into Property.Values.
	MultiValue map[string]bool
}

// IsMultiValue reports whether the named property takes a value list.
// The name must already be canonical (upper-cased).
func (p Profile) IsMultiValue(name string) bool {
	return p.MultiValue[name]
}

// ICalendar returns the RFC 5545 profile: VCALENDAR roots, with the
// standard comma-delimited list properties.
func ICalendar() Profile {
	return Profile{
		Name: "ical",
		Root: "VCALENDAR",
		MultiValue: map[string]bool{
			"CATEGORIES": true,
			"RESOURCES":  true,
			"EXDATE":     true,
			"RDATE":      true,
			"FREEBUSY":   true,
		},
	}
}

// VCard returns the RFC 6350 profile: VCARD roots, one per contact,
// commonly several per stream.
func VCard() Profile {
	return Profile{
		Name: "vcard",
		Root: "VCARD",
		MultiValue: map[string]bool{
			"CATEGORIES": true,
			"NICKNAME":   true,
		},
	}
}
