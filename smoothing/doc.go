// Package smoothing implements the constant-model smoothing strategy used by
// the trend indicators.
//
// A ConstantModel is a closed set of ways to reduce a window of values to a
// single representative value: simple, smoothed, or exponential moving
// average, moving median, or moving mode. Indicators take the model as a
// parameter and dispatch once per call, so the strategy is selected for a
// whole series rather than per element.
package smoothing
