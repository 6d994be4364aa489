package vtype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePeriodExplicit(t *testing.T) {
	p, err := Decoder{}.ParsePeriod("19970101T180000Z/19970102T070000Z")
	require.NoError(t, err)
	require.True(t, p.Start.Equal(time.Date(1997, time.January, 1, 18, 0, 0, 0, time.UTC)))
	require.True(t, p.End.Equal(time.Date(1997, time.January, 2, 7, 0, 0, 0, time.UTC)))
	require.Equal(t, 13*time.Hour, p.Duration())
}

func TestParsePeriodWithDuration(t *testing.T) {
	p, err := Decoder{}.ParsePeriod("19970101T180000Z/PT5H30M")
	require.NoError(t, err)
	require.True(t, p.End.Equal(p.Start.Add(5*time.Hour+30*time.Minute)))
}

func TestParsePeriodRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"19970101T180000Z",          // no separator
		"nonsense/PT5H",             // bad start
		"19970101T180000Z/nonsense", // bad end
		"19970101T180000Z/P1Q",      // bad duration
	} {
		_, err := Decoder{}.ParsePeriod(in)
		require.Error(t, err, "input %q", in)
	}
}
