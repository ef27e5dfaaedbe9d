package chart

import (
	"math"

	"github.com/quantfold/gotrend/validate"
)

// Point is a price paired with its index in the original series. Indices are
// positions in the series the point was extracted from, so they stay
// meaningful after windowing.
type Point struct {
	Value float64
	Index int
}

// Peaks finds local maxima over every full window of size period and merges
// detections closer than closestNeighbor to the last accepted peak.
//
// Within a window, ties prefer the rightmost occurrence. A candidate within
// closestNeighbor of the last accepted peak either replaces it (when higher)
// or is absorbed without being emitted (when lower). The merge compares
// against the last accepted peak only, not every neighbor in range; callers
// relying on peak positions should keep that asymmetry in mind.
func Peaks(prices []float64, period, closestNeighbor int) ([]Point, error) {
	if err := validate.Period(period, len(prices)); err != nil {
		return nil, err
	}

	var peaks []Point
	lastIndex := 0
	lastValue := 0.0

	for i := 0; i+period <= len(prices); i++ {
		value, local := windowMax(prices[i : i+period])
		index := i + local

		switch {
		case lastIndex == 0:
			peaks = append(peaks, Point{Value: value, Index: index})
			lastIndex, lastValue = index, value
		case index <= lastIndex+closestNeighbor:
			if value < lastValue {
				lastIndex = index
			} else if value > lastValue {
				peaks[len(peaks)-1] = Point{Value: value, Index: index}
				lastIndex, lastValue = index, value
			}
		default:
			if !containsPoint(peaks, value, index) {
				peaks = append(peaks, Point{Value: value, Index: index})
				lastIndex, lastValue = index, value
			}
		}
	}
	return peaks, nil
}

// Valleys finds local minima over every full window of size period and
// merges detections closer than closestNeighbor to the last accepted valley.
// Mirror of Peaks: ties prefer the rightmost occurrence, close lower
// candidates replace the last valley, close higher candidates are absorbed.
func Valleys(prices []float64, period, closestNeighbor int) ([]Point, error) {
	if err := validate.Period(period, len(prices)); err != nil {
		return nil, err
	}

	var valleys []Point
	lastIndex := 0
	lastValue := 0.0

	for i := 0; i+period <= len(prices); i++ {
		value, local := windowMin(prices[i : i+period])
		index := i + local

		switch {
		case lastIndex == 0:
			valleys = append(valleys, Point{Value: value, Index: index})
			lastIndex, lastValue = index, value
		case index <= lastIndex+closestNeighbor:
			if value > lastValue {
				lastIndex = index
			} else if value < lastValue {
				valleys[len(valleys)-1] = Point{Value: value, Index: index}
				lastIndex, lastValue = index, value
			}
		default:
			if !containsPoint(valleys, value, index) {
				valleys = append(valleys, Point{Value: value, Index: index})
				lastIndex, lastValue = index, value
			}
		}
	}
	return valleys, nil
}

// windowMax returns the maximum of the window and the rightmost index where
// it occurs. NaN entries are skipped.
func windowMax(window []float64) (float64, int) {
	best := math.NaN()
	bestIndex := 0
	for i, v := range window {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(best) || v >= best {
			best, bestIndex = v, i
		}
	}
	return best, bestIndex
}

// windowMin returns the minimum of the window and the rightmost index where
// it occurs. NaN entries are skipped.
func windowMin(window []float64) (float64, int) {
	best := math.NaN()
	bestIndex := 0
	for i, v := range window {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(best) || v <= best {
			best, bestIndex = v, i
		}
	}
	return best, bestIndex
}

func containsPoint(points []Point, value float64, index int) bool {
	for _, p := range points {
		if p.Value == value && p.Index == index {
			return true
		}
	}
	return false
}
