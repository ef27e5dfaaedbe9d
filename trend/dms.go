package trend

import (
	"math"

	"github.com/quantfold/gotrend/smoothing"
	"github.com/quantfold/gotrend/stats"
	"github.com/quantfold/gotrend/validate"
)

// DirectionalMovement is one output bar of the directional movement system.
type DirectionalMovement struct {
	PlusDI  float64
	MinusDI float64
	ADX     float64
	ADXR    float64
}

// DirectionalMovementSystem computes Wilder's directional movement family
// over the series.
//
// Per bar, +DM is the upward high move when it dominates the downward low
// move, and -DM the reverse; neither dominating yields zero for both. The
// movements and true ranges are summed over rolling period windows to form
// +DI and -DI (each 100 times the DM share of the true range), DX is the
// normalized DI spread, ADX smooths DX with the selected model, and ADXR
// averages ADX values one period apart.
//
// The three derivation stages each consume a period, so the series must
// span at least 3*period bars. Outputs align the freshest value of every
// stage: result i carries +DI/-DI from bar i+2*period-2 of the DI series,
// ADX i+period-1, and ADXR i.
//
// Errors on mismatched lengths, empty input, an invalid or oversized
// period, or an unsupported smoothing model.
func DirectionalMovementSystem(highs, lows, closes []float64, period int, model smoothing.ConstantModel) ([]DirectionalMovement, error) {
	length := len(highs)
	if err := validate.SameLength(
		validate.Length{Name: "highs", Len: length},
		validate.Length{Name: "lows", Len: len(lows)},
		validate.Length{Name: "closes", Len: len(closes)},
	); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("highs", length); err != nil {
		return nil, err
	}
	if err := validate.SpansPeriods(period, length, 3); err != nil {
		return nil, err
	}

	plusDM := make([]float64, 0, length-1)
	minusDM := make([]float64, 0, length-1)
	for i := 1; i < length; i++ {
		highDiff := highs[i] - highs[i-1]
		lowDiff := lows[i-1] - lows[i]
		switch {
		case highDiff > 0 && highDiff > lowDiff:
			plusDM = append(plusDM, highDiff)
			minusDM = append(minusDM, 0)
		case lowDiff > 0 && lowDiff > highDiff:
			plusDM = append(plusDM, 0)
			minusDM = append(minusDM, lowDiff)
		default:
			plusDM = append(plusDM, 0)
			minusDM = append(minusDM, 0)
		}
	}

	trueRanges, err := stats.TrueRange(closes[1:], highs[1:], lows[1:])
	if err != nil {
		return nil, err
	}

	plusDI := make([]float64, 0, length-period)
	minusDI := make([]float64, 0, length-period)
	for i := period; i < length; i++ {
		var trSum, plusSum, minusSum float64
		for j := i - period; j < i; j++ {
			trSum += trueRanges[j]
			plusSum += plusDM[j]
			minusSum += minusDM[j]
		}
		plusDI = append(plusDI, 100*plusSum/trSum)
		minusDI = append(minusDI, 100*minusSum/trSum)
	}

	dx := make([]float64, len(plusDI))
	for i := range dx {
		dx[i] = 100 * math.Abs(plusDI[i]-minusDI[i]) / (plusDI[i] + minusDI[i])
	}

	adx, err := smoothing.Rolling(model, dx, period)
	if err != nil {
		return nil, err
	}

	adxr := make([]float64, 0, len(adx)-period+1)
	for i := period; i <= len(adx); i++ {
		adxr = append(adxr, (adx[i-period]+adx[i-1])/2)
	}

	out := make([]DirectionalMovement, len(adxr))
	for i := range out {
		out[i] = DirectionalMovement{
			PlusDI:  plusDI[i+2*period-2],
			MinusDI: minusDI[i+2*period-2],
			ADX:     adx[i+period-1],
			ADXR:    adxr[i],
		}
	}
	return out, nil
}
