package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMonth_NameAndNumberAgree(t *testing.T) {
	for i := 1; i <= 12; i++ {
		name := MonthName(i)
		require.NotEmpty(t, name)

		fromNumber, err := NormalizeMonth(i)
		require.NoError(t, err)
		fromName, err := NormalizeMonth(name)
		require.NoError(t, err)
		fromLower, err := NormalizeMonth(strings.ToLower(name))
		require.NoError(t, err)
		fromUpper, err := NormalizeMonth(strings.ToUpper(name))
		require.NoError(t, err)

		assert.Equal(t, i, fromNumber)
		assert.Equal(t, fromNumber, fromName)
		assert.Equal(t, fromNumber, fromLower)
		assert.Equal(t, fromNumber, fromUpper)
	}
}

func TestNormalizeMonth_Inputs(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"january", 1},
		{" March ", 3},
		{"03", 3},
		{"12", 12},
		{float64(7), 7},
		{int64(9), 9},
		{uint8(2), 2},
		{time.October, 10},
		{json.Number("11"), 11},
	}
	for _, tc := range cases {
		got, err := NormalizeMonth(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestNormalizeMonth_Invalid(t *testing.T) {
	for _, in := range []any{0, 13, -1, "", "janvier", "13", float64(1.5), float64(0), uint64(99), nil, true} {
		_, err := NormalizeMonth(in)
		assert.ErrorIs(t, err, ErrInvalidMonth, "%v", in)
		assert.ErrorIs(t, err, ErrValidation, "%v", in)
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}
