// Package vobj provides the data model for parsed iCalendar and vCard
// documents: components, properties, and parameters, in the order they
// appeared on the wire.
package vobj

import (
	"strings"
)

// Param is a single property parameter with one or more values
// (e.g. TYPE=WORK,HOME). The name is stored upper-cased; values keep
// their original casing.
type Param struct {
	Name   string
	Values []string
}

// Value returns the first parameter value.
func (p *Param) Value() string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}

// Property is a single content line of a component.
//
// Value holds the decoded text of the property (escape sequences
// resolved). Values is populated in addition to Value for property
// names the format profile registers as comma-delimited lists
// (e.g. CATEGORIES). Decoded holds a typed value when a ValueDecoder
// is installed on the parser and interpretation succeeded; otherwise
// it is nil and the textual value stands on its own.
type Property struct {
	Name    string
	Params  []Param
	Value   string
	Values  []string
	Decoded any

	// Line is the 1-based source line the property started on.
	Line int
}

// Param returns the parameter with the given name, or nil.
// The lookup is case-insensitive.
func (p *Property) Param(name string) *Param {
	for i := range p.Params {
		if strings.EqualFold(p.Params[i].Name, name) {
			return &p.Params[i]
		}
	}
	return nil
}

// ParamValue returns the first value of the named parameter, or ""
// when the parameter is absent.
func (p *Property) ParamValue(name string) string {
	if param := p.Param(name); param != nil {
		return param.Value()
	}
	return ""
}

// UnescapeText decodes the text escape sequences of RFC 5545/6350:
// \\ -> \, \n and \N -> newline, \, -> comma, \; -> semicolon.
// A trailing lone backslash and unknown escapes are kept verbatim.
func UnescapeText(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n', 'N':
			b.WriteByte('\n')
		case ',':
			b.WriteByte(',')
		case ';':
			b.WriteByte(';')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// SplitTextList splits a raw property value on unescaped commas and
// decodes each element. Escaped commas (\,) stay part of their element.
func SplitTextList(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip the escaped character
		case ',':
			out = append(out, UnescapeText(s[start:i]))
			start = i + 1
		}
	}
	out = append(out, UnescapeText(s[start:]))
	return out
}
