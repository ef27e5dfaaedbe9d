package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/gotrend/validate"
)

func TestBreakdownTrends(t *testing.T) {
	prices := []float64{100.2, 100.46, 100.53, 100.38, 100.19}
	cfg := TrendBreakConfig{
		MaxOutliers:            1,
		SoftAdjRSquaredMinimum: 0.5,
		HardAdjRSquaredMinimum: 0.25,
		SoftRMSEMultiplier:     1.2,
		HardRMSEMultiplier:     2.0,
		SoftDurbinWatsonMin:    1.0,
		SoftDurbinWatsonMax:    3.0,
		HardDurbinWatsonMin:    0.5,
		HardDurbinWatsonMax:    3.5,
	}

	segments, err := BreakdownTrends(prices, cfg)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, 0, segments[0].Start)
	assert.Equal(t, 2, segments[0].End)
	assert.InDelta(t, 0.165, segments[0].Slope, 1e-9)
	assert.InDelta(t, 100.23166666666665, segments[0].Intercept, 1e-9)

	assert.Equal(t, 2, segments[1].Start)
	assert.Equal(t, 4, segments[1].End)
	assert.InDelta(t, -0.17, segments[1].Slope, 1e-9)
	assert.InDelta(t, 100.87666666666668, segments[1].Intercept, 1e-9)
}

func TestBreakdownTrendsEmpty(t *testing.T) {
	var emptyErr *validate.EmptyInputError
	_, err := BreakdownTrends(nil, DefaultTrendBreakConfig())
	require.True(t, errors.As(err, &emptyErr))
}

func TestBreakdownTrendsSegmentsAreContiguous(t *testing.T) {
	prices := []float64{
		52.0, 51.5, 51.1, 51.9, 52.2, 52.5, 52.0, 53.2, 53.1, 53.5, 53.2,
		52.9, 53.1, 54.1, 54.9, 55.5, 56.8, 57.2, 57.8, 57.1, 57.8, 57.0,
		56.5, 56.4, 56.9, 55.9, 55.3, 55.6, 54.3, 55.1, 54.1, 53.3, 51.8,
		50.4, 51.1, 51.3, 52.6,
	}
	segments, err := BreakdownTrends(prices, DefaultTrendBreakConfig())
	require.NoError(t, err)
	require.NotEmpty(t, segments)

	assert.Equal(t, 0, segments[0].Start)
	assert.Equal(t, len(prices)-1, segments[len(segments)-1].End)
	for i := 1; i < len(segments); i++ {
		assert.Equal(t, segments[i-1].End, segments[i].Start)
	}
}

func TestBreakdownTrendsOutlierBudget(t *testing.T) {
	// One spike inside an otherwise clean line: a budget of one outlier keeps
	// the series in a single segment, a budget of zero forces a split.
	prices := []float64{1.0, 2.0, 3.0, 4.0, 9.0, 6.0, 7.0, 8.0}

	tolerant := DefaultTrendBreakConfig()
	tolerant.MaxOutliers = 1
	segments, err := BreakdownTrends(prices, tolerant)
	require.NoError(t, err)

	strict := tolerant
	strict.MaxOutliers = 0
	strictSegments, err := BreakdownTrends(prices, strict)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(segments), len(strictSegments))
}
