package stats

import (
	"math"
	"sort"
)

// Mean calculates the arithmetic mean of the values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value, or the average of the two middle values
// for an even count. NaN entries are skipped. Returns NaN for an empty slice.
func Median(values []float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode returns the most common value after rounding to the nearest integer.
// Ties are averaged. Returns NaN for an empty slice.
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	frequency := make(map[int64]int, len(values))
	for _, v := range values {
		frequency[int64(math.Round(v))]++
	}
	maxCount := 0
	for _, count := range frequency {
		if count > maxCount {
			maxCount = count
		}
	}
	var sum int64
	var n int
	for value, count := range frequency {
		if count == maxCount {
			sum += value
			n++
		}
	}
	return float64(sum) / float64(n)
}

// Max returns the maximum value, skipping NaN entries.
// Returns NaN for an empty slice.
func Max(values []float64) float64 {
	max := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Min returns the minimum value, skipping NaN entries.
// Returns NaN for an empty slice.
func Min(values []float64) float64 {
	min := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}
