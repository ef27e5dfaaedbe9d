package trend

import (
	"math"

	"github.com/quantfold/gotrend/smoothing"
	"github.com/quantfold/gotrend/validate"
)

// VolumePriceTrend advances a running volume price trend by one bar: the
// previous value plus the volume scaled by the relative price change.
// Pass 0 for previousVPT when no prior value exists.
func VolumePriceTrend(price, previousPrice, volume, previousVPT float64) float64 {
	return previousVPT + volume*((price-previousPrice)/previousPrice)
}

// VolumePriceTrendSeries threads VolumePriceTrend across the series. Each
// volume pairs with a price transition, so volumes must be exactly one
// shorter than prices.
func VolumePriceTrendSeries(prices, volumes []float64, previousVPT float64) ([]float64, error) {
	if len(volumes) != len(prices)-1 {
		return nil, &validate.MismatchedLengthError{Lengths: []validate.Length{
			{Name: "volumes", Len: len(volumes)},
			{Name: "prices", Len: len(prices)},
		}}
	}
	if err := validate.NonEmpty("volumes", len(volumes)); err != nil {
		return nil, err
	}

	vpts := make([]float64, 0, len(volumes))
	vpt := previousVPT
	for i, volume := range volumes {
		vpt = VolumePriceTrend(prices[i+1], prices[i], volume, vpt)
		vpts = append(vpts, vpt)
	}
	return vpts, nil
}

// TrueStrengthIndex double-smooths one-bar price momentum and returns the
// ratio of smoothed momentum to smoothed absolute momentum, in [-1, 1].
//
// The momentum series is smoothed over rolling firstPeriod windows with
// firstModel, then the resulting series is reduced to one value with
// secondModel. Returns 0 when the absolute leg smooths to zero. The series
// must cover firstPeriod plus one bar to produce any momentum windows.
func TrueStrengthIndex(prices []float64, firstModel smoothing.ConstantModel, firstPeriod int, secondModel smoothing.ConstantModel) (float64, error) {
	if err := validate.NonEmpty("prices", len(prices)); err != nil {
		return 0, err
	}
	length := len(prices)
	if length < firstPeriod+1 {
		return 0, &validate.InvalidPeriodError{
			Period:  firstPeriod,
			DataLen: length,
			Reason:  "data must cover the first period plus one bar",
		}
	}

	momentum := make([]float64, 0, length-1)
	absMomentum := make([]float64, 0, length-1)
	for i := 1; i < length; i++ {
		diff := prices[i] - prices[i-1]
		momentum = append(momentum, diff)
		absMomentum = append(absMomentum, math.Abs(diff))
	}

	smoothed, err := smoothing.Rolling(firstModel, momentum, firstPeriod)
	if err != nil {
		return 0, err
	}
	absSmoothed, err := smoothing.Rolling(firstModel, absMomentum, firstPeriod)
	if err != nil {
		return 0, err
	}

	second, err := smoothing.Single(secondModel, smoothed)
	if err != nil {
		return 0, err
	}
	absSecond, err := smoothing.Single(secondModel, absSmoothed)
	if err != nil {
		return 0, err
	}
	if absSecond == 0 {
		return 0, nil
	}
	return second / absSecond, nil
}

// RollingTrueStrengthIndex computes TrueStrengthIndex over every window of
// firstPeriod+secondPeriod bars.
func RollingTrueStrengthIndex(prices []float64, firstModel smoothing.ConstantModel, firstPeriod int, secondModel smoothing.ConstantModel, secondPeriod int) ([]float64, error) {
	if err := validate.NonEmpty("prices", len(prices)); err != nil {
		return nil, err
	}
	length := len(prices)
	periodSum := firstPeriod + secondPeriod
	if length < periodSum {
		return nil, &validate.InvalidPeriodError{
			Period:  periodSum,
			DataLen: length,
			Reason:  "data must cover the first and second periods combined",
		}
	}

	out := make([]float64, 0, length-periodSum+1)
	for i := 0; i+periodSum <= length; i++ {
		tsi, err := TrueStrengthIndex(prices[i:i+periodSum], firstModel, firstPeriod, secondModel)
		if err != nil {
			return nil, err
		}
		out = append(out, tsi)
	}
	return out, nil
}
