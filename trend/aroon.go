package trend

import (
	"github.com/quantfold/gotrend/stats"
	"github.com/quantfold/gotrend/validate"
)

// Aroon bundles the Aroon up, down, and oscillator values for one window.
type Aroon struct {
	Up         float64
	Down       float64
	Oscillator float64
}

// AroonUp measures how recently the window made its high: 100 when the last
// bar is the high, 0 when the first bar is. The last bar is excluded from the
// period count, and ties resolve to the most recent occurrence.
func AroonUp(highs []float64) (float64, error) {
	if err := validate.NonEmpty("highs", len(highs)); err != nil {
		return 0, err
	}
	return aroonUp(highs), nil
}

// AroonDown measures how recently the window made its low, on the same scale
// as AroonUp.
func AroonDown(lows []float64) (float64, error) {
	if err := validate.NonEmpty("lows", len(lows)); err != nil {
		return 0, err
	}
	return aroonDown(lows), nil
}

// AroonOscillator is the spread between Aroon up and Aroon down.
func AroonOscillator(up, down float64) float64 {
	return up - down
}

// AroonIndicator computes up, down, and oscillator over one window.
func AroonIndicator(highs, lows []float64) (Aroon, error) {
	if err := validate.SameLength(
		validate.Length{Name: "highs", Len: len(highs)},
		validate.Length{Name: "lows", Len: len(lows)},
	); err != nil {
		return Aroon{}, err
	}
	up, err := AroonUp(highs)
	if err != nil {
		return Aroon{}, err
	}
	down, err := AroonDown(lows)
	if err != nil {
		return Aroon{}, err
	}
	return Aroon{Up: up, Down: down, Oscillator: AroonOscillator(up, down)}, nil
}

// RollingAroonUp computes AroonUp over every full window of size period.
func RollingAroonUp(highs []float64, period int) ([]float64, error) {
	if err := validate.Period(period, len(highs)); err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(highs)-period+1)
	for i := 0; i+period <= len(highs); i++ {
		out = append(out, aroonUp(highs[i:i+period]))
	}
	return out, nil
}

// RollingAroonDown computes AroonDown over every full window of size period.
func RollingAroonDown(lows []float64, period int) ([]float64, error) {
	if err := validate.Period(period, len(lows)); err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(lows)-period+1)
	for i := 0; i+period <= len(lows); i++ {
		out = append(out, aroonDown(lows[i:i+period]))
	}
	return out, nil
}

// RollingAroonOscillator pairs precomputed up and down series element-wise.
func RollingAroonOscillator(up, down []float64) ([]float64, error) {
	if err := validate.SameLength(
		validate.Length{Name: "aroon up", Len: len(up)},
		validate.Length{Name: "aroon down", Len: len(down)},
	); err != nil {
		return nil, err
	}
	out := make([]float64, len(up))
	for i := range out {
		out[i] = AroonOscillator(up[i], down[i])
	}
	return out, nil
}

// RollingAroonIndicator computes the full Aroon triple over every window of
// size period.
func RollingAroonIndicator(highs, lows []float64, period int) ([]Aroon, error) {
	if err := validate.SameLength(
		validate.Length{Name: "highs", Len: len(highs)},
		validate.Length{Name: "lows", Len: len(lows)},
	); err != nil {
		return nil, err
	}
	if err := validate.Period(period, len(highs)); err != nil {
		return nil, err
	}
	out := make([]Aroon, 0, len(highs)-period+1)
	for i := 0; i+period <= len(highs); i++ {
		up := aroonUp(highs[i : i+period])
		down := aroonDown(lows[i : i+period])
		out = append(out, Aroon{Up: up, Down: down, Oscillator: AroonOscillator(up, down)})
	}
	return out, nil
}

// The current bar is excluded from the period count, so a one-bar window
// divides zero by zero and yields NaN.
func aroonUp(highs []float64) float64 {
	period := len(highs) - 1
	peak := stats.Max(highs)
	var sinceMax int
	for i := len(highs) - 1; i >= 0; i-- {
		if highs[i] == peak {
			sinceMax = period - i
			break
		}
	}
	return 100 * (float64(period) - float64(sinceMax)) / float64(period)
}

func aroonDown(lows []float64) float64 {
	period := len(lows) - 1
	trough := stats.Min(lows)
	var sinceMin int
	for i := len(lows) - 1; i >= 0; i-- {
		if lows[i] == trough {
			sinceMin = period - i
			break
		}
	}
	return 100 * (float64(period) - float64(sinceMin)) / float64(period)
}
