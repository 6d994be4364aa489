package contentline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govobj/govobj/internal/liner"
	"github.com/govobj/govobj/vobj"
)

func parse(t *testing.T, text string) ContentLine {
	t.Helper()
	cl, err := Parse(liner.Line{Text: text, Number: 1})
	require.NoError(t, err)
	return cl
}

func TestSimpleProperty(t *testing.T) {
	cl := parse(t, "SUMMARY:Team meeting")
	require.Equal(t, "SUMMARY", cl.Name)
	require.Empty(t, cl.Params)
	require.Equal(t, "Team meeting", cl.Value)
}

func TestSingleParam(t *testing.T) {
	cl := parse(t, "DTSTART;VALUE=DATE:20230101")
	require.Equal(t, "DTSTART", cl.Name)
	require.Equal(t, []vobj.Param{{Name: "VALUE", Values: []string{"DATE"}}}, cl.Params)
	require.Equal(t, "20230101", cl.Value)
}

func TestQuotedParamKeepsColon(t *testing.T) {
	cl := parse(t, `ATTENDEE;CN="John Doe";ROLE=REQ-PARTICIPANT:mailto:john@example.com`)
	require.Equal(t, "ATTENDEE", cl.Name)
	require.Equal(t, []vobj.Param{
		{Name: "CN", Values: []string{"John Doe"}},
		{Name: "ROLE", Values: []string{"REQ-PARTICIPANT"}},
	}, cl.Params)
	require.Equal(t, "mailto:john@example.com", cl.Value)
}

func TestQuotedParamKeepsDelimiters(t *testing.T) {
	cl := parse(t, `X-ADDR;LABEL="1, Main St; Springfield":somewhere`)
	require.Equal(t, []string{"1, Main St; Springfield"}, cl.Params[0].Values)
}

func TestMultiValuedParam(t *testing.T) {
	cl := parse(t, "TEL;TYPE=WORK,HOME:+1-555-0100")
	require.Equal(t, []vobj.Param{{Name: "TYPE", Values: []string{"WORK", "HOME"}}}, cl.Params)
	require.Equal(t, "+1-555-0100", cl.Value)
}

func TestMixedQuotedAndRawValues(t *testing.T) {
	cl := parse(t, `ATTENDEE;MEMBER="mailto:a@x",b:mailto:c@x`)
	require.Equal(t, []string{"mailto:a@x", "b"}, cl.Params[0].Values)
	require.Equal(t, "mailto:c@x", cl.Value)
}

func TestNamesCanonicalized(t *testing.T) {
	cl := parse(t, "summary;language=en-US:hi")
	require.Equal(t, "SUMMARY", cl.Name)
	require.Equal(t, "LANGUAGE", cl.Params[0].Name)
	// Parameter and property values keep their casing.
	require.Equal(t, []string{"en-US"}, cl.Params[0].Values)
	require.Equal(t, "hi", cl.Value)
}

func TestEmptyValueIsLegal(t *testing.T) {
	cl := parse(t, "DESCRIPTION:")
	require.Equal(t, "DESCRIPTION", cl.Name)
	require.Equal(t, "", cl.Value)
}

func TestValueKeptRaw(t *testing.T) {
	cl := parse(t, `NOTE:line\nbreak\, and more`)
	require.Equal(t, `line\nbreak\, and more`, cl.Value)
}

func TestLineNumberPropagated(t *testing.T) {
	cl, err := Parse(liner.Line{Text: "SUMMARY:X", Number: 42})
	require.NoError(t, err)
	require.Equal(t, 42, cl.Line)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"no colon", "SUMMARY", vobj.ErrMissingValueDelimiter},
		{"no colon after params", "DTSTART;VALUE=DATE", vobj.ErrMissingValueDelimiter},
		{"empty name", ":value", vobj.ErrMissingName},
		{"empty name before param", ";X=1:value", vobj.ErrMissingName},
		{"param without equal", "DTSTART;VALUE:20230101", vobj.ErrMissingParamEqual},
		{"empty param name", "DTSTART;=DATE:20230101", vobj.ErrMissingParamName},
		{"bare param value", "DTSTART;VALUE=:20230101", vobj.ErrEmptyParamValue},
		{"empty list element", "TEL;TYPE=,HOME:x", vobj.ErrEmptyParamValue},
		{"unterminated quote", `ATTENDEE;CN="John:mailto:j@x`, vobj.ErrUnterminatedQuote},
		{"garbage after quote", `A;B="x"y:v`, vobj.ErrMissingValueDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(liner.Line{Text: tt.text, Number: 7})
			require.ErrorIs(t, err, tt.want)

			var lineErr *vobj.LineError
			require.ErrorAs(t, err, &lineErr)
			require.Equal(t, 7, lineErr.Line)
		})
	}
}
