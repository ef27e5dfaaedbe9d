// Package gotrend provides quantitative finance primitives for price and
// volume time series: trend detection, trend segmentation, and trend-strength
// indicators.
//
// GoTrend is a pure computation layer. It performs no I/O, holds no state
// between calls, and is safe to run concurrently at the granularity of
// independent calls.
//
// # Features
//
//   - Peak and valley detection with neighbor merging
//   - OLS trend lines over full series, peaks, or valleys
//   - Trend segmentation via rolling regression quality metrics
//     (adjusted R², RMSE growth, Durbin–Watson) with a soft/hard break
//     policy and bounded outlier tolerance
//   - Parabolic Time Price System (Welles Wilder's SAR variant)
//   - Directional Movement System (+DI, -DI, ADX, ADXR) with a pluggable
//     smoothing strategy
//   - Aroon, Volume Price Trend, and True Strength Index
//
// # Quick Start
//
// Break a price series into piecewise-linear trend segments:
//
//	segments, _ := chart.BreakdownTrends(prices, chart.DefaultTrendBreakConfig())
//	for _, s := range segments {
//		fmt.Println(s.Start, s.End, s.Slope, s.Intercept)
//	}
//
// Compute stop-and-reverse points:
//
//	sars, _ := trend.ParabolicTimePriceSystem(highs, lows, 0.02, 0.2, 0.02, trend.Long, 0)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - chart: trend lines, peaks/valleys, and trend segmentation
//   - trend: Parabolic SAR, Directional Movement System, Aroon, VPT, TSI
//   - smoothing: the pluggable constant-model smoothing strategy
//   - stats: basic descriptive statistics consumed by the indicators
//   - validate: input validation and the shared error types
//
// # References
//
//   - Wilder, J. W. (1978). New Concepts in Technical Trading Systems
//   - Durbin, J., & Watson, G. S. (1950). Testing for Serial Correlation in
//     Least Squares Regression
package gotrend
