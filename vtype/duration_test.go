package vtype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"P12W", 12 * 7 * 24 * time.Hour},
		{"-P12W", -12 * 7 * 24 * time.Hour},
		{"+P12W", 12 * 7 * 24 * time.Hour},
		{"P12D", 12 * 24 * time.Hour},
		{"PT12H", 12 * time.Hour},
		{"PT12M", 12 * time.Minute},
		{"PT12S", 12 * time.Second},
		{"PT10M12S", 10*time.Minute + 12*time.Second},
		{"P2DT10M12S", 2*24*time.Hour + 10*time.Minute + 12*time.Second},
		{"P15DT5H0M20S", 15*24*time.Hour + 5*time.Hour + 20*time.Second},
		{"-PT30M", -30 * time.Minute},
		// Degenerate but accepted, matching common producer behavior.
		{"P", 0},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseDurationRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"P1D12W",   // weeks are exclusive with days
		"P1W12D",   // same, other order
		"PT10S12M", // time units out of order
		"12W",      // missing P
		"P12X",     // unknown unit
		"one day",
	} {
		_, err := ParseDuration(in)
		require.Error(t, err, "input %q", in)
	}
}
