package trend

import (
	"math"
	"strconv"

	"github.com/quantfold/gotrend/stats"
	"github.com/quantfold/gotrend/validate"
)

// Position is the side of a trade a stop-and-reverse scan is tracking.
type Position int

const (
	Short Position = iota
	Long
)

func (p Position) String() string {
	switch p {
	case Short:
		return "Short"
	case Long:
		return "Long"
	default:
		return "Position(" + strconv.Itoa(int(p)) + ")"
	}
}

// LongSAR computes the next stop-and-reverse point for a long position:
// previousSAR advanced toward the extreme high, capped at the given low.
//
// extremePoint is the highest high of the position so far; low is the lowest
// low of this bar or the previous one.
func LongSAR(previousSAR, extremePoint, accelerationFactor, low float64) float64 {
	sar := previousSAR + accelerationFactor*(extremePoint-previousSAR)
	return math.Min(sar, low)
}

// ShortSAR computes the next stop-and-reverse point for a short position:
// previousSAR advanced toward the extreme low, floored at the given high.
//
// extremePoint is the lowest low of the position so far; high is the highest
// high of this bar or the previous one.
func ShortSAR(previousSAR, extremePoint, accelerationFactor, high float64) float64 {
	sar := previousSAR - accelerationFactor*(previousSAR-extremePoint)
	return math.Max(sar, high)
}

// ParabolicTimePriceSystem computes the stop-and-reverse trajectory over the
// whole series.
//
// The scan starts in startPosition, seeded from previousSAR when non-zero,
// otherwise from the first bar's low (long) or high (short). A short
// position flips to long when the bar's high crosses the SAR; the new SAR
// pivots from the lowest low since the last flip. The long side mirrors
// this. While a position holds, the acceleration factor ratchets up by
// afStep on every new extreme, capped at afMax.
//
// Returns one SAR per bar. Errors on empty or mismatched-length inputs.
func ParabolicTimePriceSystem(highs, lows []float64, afStart, afMax, afStep float64, startPosition Position, previousSAR float64) ([]float64, error) {
	if err := validate.NonEmpty("highs", len(highs)); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("lows", len(lows)); err != nil {
		return nil, err
	}
	if err := validate.SameLength(
		validate.Length{Name: "highs", Len: len(highs)},
		validate.Length{Name: "lows", Len: len(lows)},
	); err != nil {
		return nil, err
	}

	// Repeated af increments drift below the configured max (0.02 steps land
	// on 0.19999999999999998, not 0.2), which would let the ratchet fire one
	// extra time. Shaving an epsilon off the max keeps the final step intact.
	afMax -= 0.0000001

	length := len(highs)
	af := afStart
	sars := make([]float64, 0, length)
	position := startPosition
	positionStart := 0

	switch position {
	case Long:
		seed := previousSAR
		if seed == 0 {
			seed = lows[0]
		}
		sars = append(sars, LongSAR(seed, highs[0], af, lows[0]))
	case Short:
		seed := previousSAR
		if seed == 0 {
			seed = highs[0]
		}
		sars = append(sars, ShortSAR(seed, lows[0], af, highs[0]))
	default:
		return nil, &validate.UnsupportedVariantError{Name: position.String()}
	}

	for i := 1; i < length; i++ {
		prev := sars[i-1]
		switch {
		case position == Short && highs[i] > prev:
			// Reverse short -> long: pivot from the lowest low since the
			// last flip, restart the acceleration factor.
			position = Long
			periodMax := highs[i]
			previousMin := stats.Min(lows[i-1 : i+1])
			af = afStart
			pivotedSAR := stats.Min(lows[positionStart:i])
			positionStart = i
			sars = append(sars, LongSAR(pivotedSAR, periodMax, af, previousMin))

		case position == Short:
			periodMin := stats.Min(lows[positionStart:i])
			if periodMin > lows[i] {
				periodMin = lows[i]
				if af <= afMax {
					af += afStep
				}
			}
			previousMax := stats.Max(highs[i-1 : i+1])
			sars = append(sars, ShortSAR(prev, periodMin, af, previousMax))

		case position == Long && lows[i] < prev:
			// Reverse long -> short.
			position = Short
			periodMin := lows[i]
			af = afStart
			previousMax := stats.Max(highs[i-1 : i+1])
			pivotedSAR := stats.Max(highs[positionStart:i])
			positionStart = i
			sars = append(sars, ShortSAR(pivotedSAR, periodMin, af, previousMax))

		default:
			periodMax := stats.Max(highs[positionStart:i])
			if periodMax < highs[i] {
				periodMax = highs[i]
				if af <= afMax {
					af += afStep
				}
			}
			previousMin := stats.Min(lows[i-1 : i+1])
			sars = append(sars, LongSAR(prev, periodMax, af, previousMin))
		}
	}
	return sars, nil
}
