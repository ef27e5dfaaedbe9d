package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/gotrend/validate"
)

func TestPeaksSinglePeak(t *testing.T) {
	highs := []float64{101.26, 102.57, 102.32, 100.69}
	peaks, err := Peaks(highs, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Value: 102.57, Index: 1}}, peaks)
}

func TestPeaksRepeatedWindowWinnerEmittedOnce(t *testing.T) {
	prices := []float64{103.0, 102.0, 107.0, 104.0, 100.0}
	peaks, err := Peaks(prices, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Value: 107.0, Index: 2}}, peaks)
}

func TestPeaksMultiplePeaks(t *testing.T) {
	highs := []float64{101.26, 102.57, 102.32, 100.69, 100.83, 101.73, 102.01}
	peaks, err := Peaks(highs, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{Value: 102.57, Index: 1},
		{Value: 102.01, Index: 6},
	}, peaks)
}

func TestPeaksTieBreaksRightmost(t *testing.T) {
	highs := []float64{101.26, 102.57, 102.57, 100.69, 100.83, 101.73, 102.01}
	peaks, err := Peaks(highs, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{Value: 102.57, Index: 2},
		{Value: 102.01, Index: 6},
	}, peaks)
}

func TestPeaksPeriodTooLong(t *testing.T) {
	highs := []float64{101.26, 102.57, 102.57, 100.69}
	var periodErr *validate.InvalidPeriodError
	_, err := Peaks(highs, 40, 1)
	require.True(t, errors.As(err, &periodErr))
}

func TestValleysSingleValley(t *testing.T) {
	lows := []float64{100.08, 98.75, 100.14, 98.98, 99.07, 100.1, 99.96}
	valleys, err := Valleys(lows, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{Value: 98.75, Index: 1}}, valleys)
}

func TestValleysMultipleValleys(t *testing.T) {
	lows := []float64{100.08, 98.75, 100.14, 98.98, 99.07, 100.1, 99.96}
	valleys, err := Valleys(lows, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{Value: 98.75, Index: 1},
		{Value: 98.98, Index: 3},
	}, valleys)
}

func TestValleysTieBreaksRightmost(t *testing.T) {
	lows := []float64{98.75, 98.75, 100.14, 98.98, 99.07, 100.1, 99.96}
	valleys, err := Valleys(lows, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{
		{Value: 98.75, Index: 1},
		{Value: 98.98, Index: 3},
	}, valleys)
}

func TestValleysPeriodTooLong(t *testing.T) {
	lows := []float64{98.75, 98.75, 100.14, 98.98}
	var periodErr *validate.InvalidPeriodError
	_, err := Valleys(lows, 40, 1)
	require.True(t, errors.As(err, &periodErr))
}

func TestExtremaPointToRealPrices(t *testing.T) {
	prices := []float64{
		52.0, 51.5, 51.1, 51.9, 52.2, 52.5, 52.0, 53.2, 53.1, 53.5, 53.2,
		52.9, 53.1, 54.1, 54.9, 55.5, 56.8, 57.2, 57.8, 57.1, 57.8, 57.0,
		56.5, 56.4, 56.9, 55.9, 55.3, 55.6, 54.3, 55.1, 54.1, 53.3, 51.8,
	}
	peaks, err := Peaks(prices, 5, 2)
	require.NoError(t, err)
	require.NotEmpty(t, peaks)
	for _, p := range peaks {
		assert.Equal(t, prices[p.Index], p.Value)
	}

	valleys, err := Valleys(prices, 5, 2)
	require.NoError(t, err)
	require.NotEmpty(t, valleys)
	for _, v := range valleys {
		assert.Equal(t, prices[v.Index], v.Value)
	}
}
