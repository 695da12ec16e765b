package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// ParseNumber parses a cell as a finite number. Empty and non-numeric
// cells report false.
func ParseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Numbers returns the numeric cells of values in order
func Numbers(values []string) stats.Float64Data {
	data := make(stats.Float64Data, 0, len(values))
	for _, cell := range values {
		if v, ok := ParseNumber(cell); ok {
			data = append(data, v)
		}
	}
	return data
}

// Mean returns the mean of the numeric cells, or nil when there are none
func Mean(values []string) *float64 {
	m, err := stats.Mean(Numbers(values))
	if err != nil {
		return nil
	}
	return &m
}

// Max returns the largest numeric cell, or nil when there are none
func Max(values []string) *float64 {
	m, err := stats.Max(Numbers(values))
	if err != nil {
		return nil
	}
	return &m
}

// LastNumber returns the numeric cell closest to the end of values
func LastNumber(values []string) *float64 {
	for i := len(values) - 1; i >= 0; i-- {
		if v, ok := ParseNumber(values[i]); ok {
			return &v
		}
	}
	return nil
}

// DistinctCount counts the distinct non-empty values
func DistinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Round rounds v to the given number of decimal places. The exact binary
// value is rounded with ties to even, so 4.25 gives 4.2 and 4.35 (stored as
// 4.3499...) gives 4.3.
func Round(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(*v, 'f', places, 64), 64)
	if err != nil {
		return nil
	}
	return &r
}

// Truncate drops the fractional part of v
func Truncate(v *float64) *int64 {
	if v == nil {
		return nil
	}
	t := int64(*v)
	return &t
}
