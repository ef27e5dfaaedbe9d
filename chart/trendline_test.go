package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/gotrend/validate"
)

func TestOverallTrend(t *testing.T) {
	prices := []float64{100.2, 100.46, 100.53, 100.38, 100.19}
	slope, intercept, err := OverallTrend(prices)
	require.NoError(t, err)
	assert.InDelta(t, -0.01, slope, 1e-9)
	assert.InDelta(t, 100.372, intercept, 1e-9)
}

func TestOverallTrendEmpty(t *testing.T) {
	var emptyErr *validate.EmptyInputError
	_, _, err := OverallTrend(nil)
	require.True(t, errors.As(err, &emptyErr))
}

func TestPeakTrend(t *testing.T) {
	highs := []float64{101.26, 102.57, 102.32, 100.69, 100.83, 101.73, 102.01}
	slope, intercept, err := PeakTrend(highs, 4)
	require.NoError(t, err)
	assert.InDelta(t, -0.112, slope, 1e-9)
	assert.InDelta(t, 102.682, intercept, 1e-9)
}

func TestValleyTrend(t *testing.T) {
	lows := []float64{100.08, 98.75, 100.14, 98.98, 99.07, 100.1, 99.96}
	slope, intercept, err := ValleyTrend(lows, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.115, slope, 1e-9)
	assert.InDelta(t, 98.635, intercept, 1e-9)
}

func TestTrendLineExactFit(t *testing.T) {
	points := []Point{
		{Value: 1, Index: 0},
		{Value: 3, Index: 1},
		{Value: 5, Index: 2},
		{Value: 7, Index: 3},
	}
	slope, intercept := trendLine(points)
	assert.InDelta(t, 2.0, slope, 1e-12)
	assert.InDelta(t, 1.0, intercept, 1e-12)

	// refit over the same points is stable
	slope2, intercept2 := trendLine(points)
	assert.Equal(t, slope, slope2)
	assert.Equal(t, intercept, intercept2)
}

func TestGoodnessOfFitSentinels(t *testing.T) {
	adj, rmse, dw := goodnessOfFit([]Point{{Value: 1, Index: 0}}, 0, 0)
	assert.Equal(t, 0.0, adj)
	assert.Equal(t, 0.0, rmse)
	assert.Equal(t, 2.0, dw)
}

func TestGoodnessOfFitPerfectLine(t *testing.T) {
	points := []Point{
		{Value: 1, Index: 0},
		{Value: 3, Index: 1},
		{Value: 5, Index: 2},
		{Value: 7, Index: 3},
	}
	adj, rmse, dw := goodnessOfFit(points, 2, 1)
	assert.Equal(t, 1.0, adj)
	assert.Equal(t, 0.0, rmse)
	// zero residuals report the neutral Durbin-Watson value
	assert.Equal(t, 2.0, dw)
}

func TestGoodnessOfFitNoisyLine(t *testing.T) {
	points := []Point{
		{Value: 100.2, Index: 0},
		{Value: 100.46, Index: 1},
		{Value: 100.53, Index: 2},
		{Value: 100.38, Index: 3},
		{Value: 100.19, Index: 4},
	}
	slope, intercept := trendLine(points)
	adj, rmse, dw := goodnessOfFit(points, slope, intercept)
	assert.LessOrEqual(t, adj, 1.0)
	assert.Greater(t, rmse, 0.0)
	assert.Greater(t, dw, 0.0)
	assert.Less(t, dw, 4.0)
}
