package chart

import "math"

// trendLine fits an ordinary least squares line to the points, using the
// index as the independent variable and the value as the dependent one.
//
// The fit needs at least two distinct indices; a point set with a single
// distinct index divides by zero variance and yields an infinite or NaN
// slope.
func trendLine(points []Point) (slope, intercept float64) {
	n := float64(len(points))
	var meanX, meanY float64
	for _, p := range points {
		meanX += float64(p.Index)
		meanY += p.Value
	}
	meanX /= n
	meanY /= n

	var num, den float64
	for _, p := range points {
		dx := float64(p.Index) - meanX
		num += dx * (p.Value - meanY)
		den += dx * dx
	}

	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept
}

// goodnessOfFit computes the adjusted R², RMSE, and Durbin–Watson statistic
// for a fitted line over the points.
//
// Fewer than two points return the neutral sentinel (0, 0, 2). Raw R² is
// clamped to 0 and the total-squares and residual denominators are floored
// at 1e-10: a zero-variance or perfectly-fitted window reports no
// autocorrelation signal (Durbin–Watson 2) instead of dividing by zero, so
// the segmentation scan stays total.
func goodnessOfFit(points []Point, slope, intercept float64) (adjRSquared, rmse, durbinWatson float64) {
	n := len(points)
	if n < 2 {
		return 0, 0, 2
	}

	var mean float64
	for _, p := range points {
		mean += p.Value
	}
	mean /= float64(n)

	residuals := make([]float64, n)
	var sumSqResiduals, totalSquares float64
	for i, p := range points {
		predicted := intercept + slope*float64(p.Index)
		r := p.Value - predicted
		residuals[i] = r
		sumSqResiduals += r * r

		d := p.Value - mean
		totalSquares += d * d
	}

	rSquared := 0.0
	if totalSquares > 1e-10 {
		rSquared = math.Max(0, 1-sumSqResiduals/totalSquares)
	}

	degreesOfFreedom := math.Max(float64(n)-2, 1)
	adjRSquared = rSquared
	if n > 2 {
		adjRSquared = 1 - (1-rSquared)*float64(n-1)/degreesOfFreedom
	}

	durbinWatson = 2.0
	if sumSqResiduals > 1e-10 {
		var num float64
		for i := 1; i < n; i++ {
			d := residuals[i] - residuals[i-1]
			num += d * d
		}
		durbinWatson = num / sumSqResiduals
	}

	rmse = math.Sqrt(sumSqResiduals / float64(n))
	return adjRSquared, rmse, durbinWatson
}
