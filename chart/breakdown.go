package chart

import (
	"math"

	"github.com/quantfold/gotrend/validate"
)

// Segment is one piecewise-linear trend over [Start, End] in the original
// series. Slope and Intercept describe the OLS fit over that range.
// Consecutive segments share their boundary index: the End of one segment is
// the Start of the next.
type Segment struct {
	Start     int
	End       int
	Slope     float64
	Intercept float64
}

// BreakdownTrends partitions the price series into contiguous trend
// segments.
//
// The scan grows a working window one price at a time, refits the trend
// line, and evaluates the fit against cfg. A break candidate is first
// treated as a transient outlier and skipped, up to cfg.MaxOutliers times
// per segment; once the budget is spent, the current segment is closed at
// the last accepted index and a new segment is started from there through
// the breaking point (skipped outliers included).
//
// The first segment always starts at index 0 and the last always ends at
// len(prices)-1. Returns an EmptyInputError for an empty series.
func BreakdownTrends(prices []float64, cfg TrendBreakConfig) ([]Segment, error) {
	if err := validate.NonEmpty("prices", len(prices)); err != nil {
		return nil, err
	}

	var (
		segments     []Segment
		outliers     int
		slope        float64
		intercept    float64
		startIndex   int
		endIndex     = 1
		points       = make([]Point, 0, len(prices))
		previousRMSE = math.MaxFloat64
	)

	for index, price := range prices {
		points = append(points, Point{Value: price, Index: index})
		if index == 0 {
			continue
		}
		if index > endIndex {
			s, ic := trendLine(points)
			adjRSquared, rmse, durbinWatson := goodnessOfFit(points, s, ic)

			softBreak := adjRSquared < cfg.SoftAdjRSquaredMinimum &&
				rmse > cfg.SoftRMSEMultiplier*previousRMSE &&
				(durbinWatson < cfg.SoftDurbinWatsonMin || durbinWatson > cfg.SoftDurbinWatsonMax)

			hardBreak := adjRSquared < cfg.HardAdjRSquaredMinimum ||
				rmse > cfg.HardRMSEMultiplier*previousRMSE ||
				durbinWatson < cfg.HardDurbinWatsonMin || durbinWatson > cfg.HardDurbinWatsonMax

			if softBreak || hardBreak {
				if outliers < cfg.MaxOutliers {
					// Transient: drop the point from the window and keep the
					// previous RMSE as the comparison base.
					outliers++
					points = points[:len(points)-1]
					continue
				}

				segments = append(segments, Segment{
					Start: startIndex, End: endIndex, Slope: slope, Intercept: intercept,
				})
				startIndex = endIndex
				endIndex = index

				points = points[:0]
				for x := startIndex; x <= index; x++ {
					points = append(points, Point{Value: prices[x], Index: x})
				}
				slope, intercept = trendLine(points)
				if len(points) > 2 {
					_, previousRMSE, _ = goodnessOfFit(points, slope, intercept)
				} else {
					previousRMSE = math.MaxFloat64
				}
				outliers = 0
			} else {
				previousRMSE = rmse
				slope, intercept = s, ic
			}
		}
		endIndex = index
	}

	segments = append(segments, Segment{
		Start: startIndex, End: endIndex, Slope: slope, Intercept: intercept,
	})
	return segments, nil
}
