package stats

import (
	"math"

	"github.com/quantfold/gotrend/validate"
)

// TrueRange computes the per-bar true range against a reference close:
// max(high-low, |high-referenceClose|, |low-referenceClose|).
//
// The caller decides which close to reference; Wilder's definition uses the
// previous bar's close, while the directional movement system here passes
// the same-bar close.
func TrueRange(referenceClose, highs, lows []float64) ([]float64, error) {
	if err := validate.NonEmpty("highs", len(highs)); err != nil {
		return nil, err
	}
	if err := validate.SameLength(
		validate.Length{Name: "referenceClose", Len: len(referenceClose)},
		validate.Length{Name: "highs", Len: len(highs)},
		validate.Length{Name: "lows", Len: len(lows)},
	); err != nil {
		return nil, err
	}

	ranges := make([]float64, len(highs))
	for i := range highs {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - referenceClose[i])
		lc := math.Abs(lows[i] - referenceClose[i])
		ranges[i] = math.Max(hl, math.Max(hc, lc))
	}
	return ranges, nil
}
