package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFCFA(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 FCFA"},
		{500, "500 FCFA"},
		{5000, "5 000 FCFA"},
		{1250000, "1 250 000 FCFA"},
		{-75000, "-75 000 FCFA"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatFCFA(tc.amount))
	}
}

func TestPercent(t *testing.T) {
	require.Equal(t, 75, Percent(7500, 10000))
	require.Equal(t, 0, Percent(0, 10000))
	require.Equal(t, 0, Percent(5000, 0))
	require.Equal(t, 100, Percent(10000, 10000))
	// over-collection is reported as-is, not clamped
	require.Equal(t, 120, Percent(12000, 10000))
}
