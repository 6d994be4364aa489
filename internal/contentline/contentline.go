// Package contentline tokenizes one logical line into a property name,
// an ordered parameter list, and the raw value text.
//
// The grammar is the content line shared by RFC 5545 and RFC 6350:
//
//	name *(";" pname "=" pvalue *("," pvalue)) ":" value
//
// A pvalue may be double-quoted, in which case it may contain ":", ";"
// and "," literally. Names and parameter names are canonicalized to
// upper case; parameter values and the value keep their original form.
// The value is returned verbatim: escape decoding is format policy and
// belongs to the tree builder.
package contentline

import (
	"strings"

	"github.com/govobj/govobj/internal/liner"
	"github.com/govobj/govobj/vobj"
)

// ContentLine is one tokenized property, BEGIN, or END line.
type ContentLine struct {
	Name   string
	Params []vobj.Param
	Value  string // raw, escape sequences not yet decoded
	Line   int
}

// Parse tokenizes a single logical line.
func Parse(ln liner.Line) (ContentLine, error) {
	s := ln.Text

	// Property name runs to the first ";" or ":".
	end := strings.IndexAny(s, ";:")
	if end < 0 {
		return ContentLine{}, vobj.NewLineError(ln.Number, vobj.ErrMissingValueDelimiter)
	}
	if end == 0 {
		return ContentLine{}, vobj.NewLineError(ln.Number, vobj.ErrMissingName)
	}
	cl := ContentLine{
		Name: strings.ToUpper(s[:end]),
		Line: ln.Number,
	}
	s = s[end:]

	for strings.HasPrefix(s, ";") {
		s = s[1:]

		end := strings.IndexAny(s, "=;:")
		if end < 0 || s[end] != '=' {
			return ContentLine{}, vobj.NewLineError(ln.Number, vobj.ErrMissingParamEqual)
		}
		if end == 0 {
			return ContentLine{}, vobj.NewLineError(ln.Number, vobj.ErrMissingParamName)
		}
		param := vobj.Param{Name: strings.ToUpper(s[:end])}
		s = s[end+1:]

		for {
			value, rest, err := scanParamValue(s, ln.Number)
			if err != nil {
				return ContentLine{}, err
			}
			param.Values = append(param.Values, value)
			s = rest

			if !strings.HasPrefix(s, ",") {
				break
			}
			s = s[1:]
		}
		cl.Params = append(cl.Params, param)
	}

	if !strings.HasPrefix(s, ":") {
		return ContentLine{}, vobj.NewLineError(ln.Number, vobj.ErrMissingValueDelimiter)
	}
	cl.Value = s[1:]
	return cl, nil
}

// scanParamValue consumes one parameter value, quoted or raw, and
// returns it with the unconsumed remainder of the line.
func scanParamValue(s string, num int) (string, string, error) {
	if strings.HasPrefix(s, `"`) {
		s = s[1:]
		end := strings.IndexByte(s, '"')
		if end < 0 {
			return "", "", vobj.NewLineError(num, vobj.ErrUnterminatedQuote)
		}
		return s[:end], s[end+1:], nil
	}

	end := strings.IndexAny(s, ",;:")
	if end < 0 {
		// The value delimiter ":" never showed up.
		return "", "", vobj.NewLineError(num, vobj.ErrMissingValueDelimiter)
	}
	if end == 0 {
		return "", "", vobj.NewLineError(num, vobj.ErrEmptyParamValue)
	}
	return s[:end], s[end:], nil
}
