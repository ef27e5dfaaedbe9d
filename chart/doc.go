// Package chart detects, analyzes, and breaks down trends in price charts.
//
// It provides peak and valley detection with neighbor merging, OLS trend
// lines fitted to the whole series or to its extrema, and BreakdownTrends,
// which partitions a price series into contiguous piecewise-linear trend
// segments using rolling regression quality metrics (adjusted R², RMSE
// growth, and the Durbin–Watson statistic) under a two-tier soft/hard break
// policy with bounded outlier tolerance.
//
// All functions operate on plain []float64 price slices and return value
// types; nothing holds state between calls.
package chart
