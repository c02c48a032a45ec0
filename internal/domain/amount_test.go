package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"integer", "100", "100", true},
		{"fractional", "25.50", "25.5", true},
		{"tiny", "0.01", "0.01", true},
		{"zero", "0", "", false},
		{"negative", "-5", "", false},
		{"non numeric", "abc", "", false},
		{"empty", "", "", false},
		{"grouped digits", "1,000", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.input)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tc.want)))
		})
	}
}
