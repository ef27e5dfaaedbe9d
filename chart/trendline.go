package chart

import "github.com/quantfold/gotrend/validate"

// OverallTrend fits a trend line to every price in the series and returns
// its slope and intercept.
func OverallTrend(prices []float64) (slope, intercept float64, err error) {
	if err := validate.NonEmpty("prices", len(prices)); err != nil {
		return 0, 0, err
	}
	points := make([]Point, len(prices))
	for i, price := range prices {
		points[i] = Point{Value: price, Index: i}
	}
	slope, intercept = trendLine(points)
	return slope, intercept, nil
}

// PeakTrend fits a trend line to the peaks found over the given period and
// returns its slope and intercept.
func PeakTrend(prices []float64, period int) (slope, intercept float64, err error) {
	peaks, err := Peaks(prices, period, 1)
	if err != nil {
		return 0, 0, err
	}
	slope, intercept = trendLine(peaks)
	return slope, intercept, nil
}

// ValleyTrend fits a trend line to the valleys found over the given period
// and returns its slope and intercept.
func ValleyTrend(prices []float64, period int) (slope, intercept float64, err error) {
	valleys, err := Valleys(prices, period, 1)
	if err != nil {
		return 0, 0, err
	}
	slope, intercept = trendLine(valleys)
	return slope, intercept, nil
}
