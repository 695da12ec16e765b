package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   *float64
	}{
		{name: "integers", values: []string{"100", "200", "300"}, want: ptr(200.0)},
		{name: "skips empty and text", values: []string{"10", "", "n/a", "20"}, want: ptr(15.0)},
		{name: "trims spaces", values: []string{" 1.5 ", "2.5"}, want: ptr(2.0)},
		{name: "no values", values: nil, want: nil},
		{name: "no numeric values", values: []string{"", "abc"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.values)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestMax(t *testing.T) {
	got := Max([]string{"185", "", "231.8", "217.7"})
	require.NotNil(t, got)
	assert.Equal(t, 231.8, *got)

	assert.Nil(t, Max([]string{""}))
}

func TestLastNumber(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   *float64
	}{
		{name: "last row", values: []string{"260.2", "274.5", "394.3"}, want: ptr(394.3)},
		{name: "skips trailing blanks", values: []string{"260.2", "365.8", "", ""}, want: ptr(365.8)},
		{name: "skips trailing text", values: []string{"1", "2", "tbd"}, want: ptr(2.0)},
		{name: "zero rows", values: []string{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastNumber(tt.values))
		})
	}
}

func TestDistinctCount(t *testing.T) {
	assert.Equal(t, 3, DistinctCount([]string{"A", "B", "A", "C"}))
	assert.Equal(t, 2, DistinctCount([]string{"A", "", "B", ""}))
	assert.Equal(t, 0, DistinctCount(nil))
}

func TestRoundAndTruncate(t *testing.T) {
	rating := Round(Mean([]string{"4.0", "4.5", "4.7"}), 1)
	require.NotNil(t, rating)
	assert.Equal(t, 4.4, *rating)

	tie := Round(Mean([]string{"4.0", "4.5"}), 1)
	require.NotNil(t, tie)
	assert.Equal(t, 4.2, *tie)

	upper := Round(ptr(4.35), 1)
	require.NotNil(t, upper)
	assert.Equal(t, 4.3, *upper)

	price := Truncate(ptr(1234.99))
	require.NotNil(t, price)
	assert.Equal(t, int64(1234), *price)

	negative := Truncate(ptr(-2.7))
	require.NotNil(t, negative)
	assert.Equal(t, int64(-2), *negative)

	assert.Nil(t, Round(nil, 1))
	assert.Nil(t, Truncate(nil))
}

func TestParseNumber(t *testing.T) {
	v, ok := ParseNumber("65.5")
	assert.True(t, ok)
	assert.Equal(t, 65.5, v)

	for _, cell := range []string{"", "  ", "NaN", "Inf", "4 GB"} {
		_, ok := ParseNumber(cell)
		assert.False(t, ok, cell)
	}
}

func ptr(v float64) *float64 {
	return &v
}
