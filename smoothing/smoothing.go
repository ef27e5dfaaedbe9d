package smoothing

import (
	"math"
	"strconv"

	"github.com/quantfold/gotrend/stats"
	"github.com/quantfold/gotrend/validate"
)

// ConstantModel selects how a window of values is reduced to a single value.
type ConstantModel int

const (
	SimpleMovingAverage ConstantModel = iota
	SmoothedMovingAverage
	ExponentialMovingAverage
	SimpleMovingMedian
	SimpleMovingMode
)

func (m ConstantModel) String() string {
	switch m {
	case SimpleMovingAverage:
		return "SimpleMovingAverage"
	case SmoothedMovingAverage:
		return "SmoothedMovingAverage"
	case ExponentialMovingAverage:
		return "ExponentialMovingAverage"
	case SimpleMovingMedian:
		return "SimpleMovingMedian"
	case SimpleMovingMode:
		return "SimpleMovingMode"
	default:
		return "ConstantModel(" + strconv.Itoa(int(m)) + ")"
	}
}

// Single reduces the whole slice to one value using the selected model.
// The moving averages weight recent values more heavily (except the simple
// average); the slice is expected oldest-first.
func Single(model ConstantModel, values []float64) (float64, error) {
	if err := validate.NonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	switch model {
	case SimpleMovingAverage:
		return stats.Mean(values), nil
	case SmoothedMovingAverage:
		return PersonalisedMovingAverage(values, 1, 0), nil
	case ExponentialMovingAverage:
		return PersonalisedMovingAverage(values, 2, 1), nil
	case SimpleMovingMedian:
		return stats.Median(values), nil
	case SimpleMovingMode:
		return stats.Mode(values), nil
	default:
		return 0, &validate.UnsupportedVariantError{Name: model.String()}
	}
}

// Rolling applies the model to every full window of size period, producing
// len(values)-period+1 outputs.
func Rolling(model ConstantModel, values []float64, period int) ([]float64, error) {
	if err := validate.Period(period, len(values)); err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(values)-period+1)
	for i := 0; i+period <= len(values); i++ {
		v, err := Single(model, values[i:i+period])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PersonalisedMovingAverage reduces the slice with a custom smoothing factor
// alpha = alphaNum / (n + alphaDen), weighting value k bars back by
// (1-alpha)^k and normalizing. alphaNum=1, alphaDen=0 gives the smoothed
// moving average (alpha 1/n); alphaNum=2, alphaDen=1 gives the exponential
// moving average (alpha 2/(n+1)).
//
// Returns NaN for an empty slice.
func PersonalisedMovingAverage(values []float64, alphaNum, alphaDen float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return values[0]
	}
	alpha := alphaNum / (float64(n) + alphaDen)
	decay := 1 - alpha

	var sum, weightSum float64
	for k := 0; k < n; k++ {
		weight := math.Pow(decay, float64(k))
		sum += values[n-1-k] * weight
		weightSum += weight
	}
	return sum / weightSum
}
