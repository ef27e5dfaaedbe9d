package validate

import (
	"math"
	"strconv"
)

// NonEmpty returns an EmptyInputError when a series of length n is empty.
func NonEmpty(name string, n int) error {
	if n == 0 {
		return &EmptyInputError{Name: name}
	}
	return nil
}

// Period checks that period is usable over data of length dataLen.
func Period(period, dataLen int) error {
	if period <= 0 {
		return &InvalidPeriodError{Period: period, DataLen: dataLen, Reason: "period must be greater than 0"}
	}
	if period > dataLen {
		return &InvalidPeriodError{Period: period, DataLen: dataLen, Reason: "period cannot be longer than the data"}
	}
	return nil
}

// SpansPeriods checks that the data covers at least count full periods.
// Indicators that chain several period-length stages (DI sums, ADX
// smoothing, ADXR offset) need a multiple of the period to emit anything.
func SpansPeriods(period, dataLen, count int) error {
	if err := Period(period, dataLen); err != nil {
		return err
	}
	if dataLen < count*period {
		return &InvalidPeriodError{
			Period:  period,
			DataLen: dataLen,
			Reason:  "data must span at least " + strconv.Itoa(count) + " full periods",
		}
	}
	return nil
}

// SameLength checks that every named input shares one length.
func SameLength(lengths ...Length) error {
	if len(lengths) == 0 {
		return nil
	}
	want := lengths[0].Len
	for _, l := range lengths[1:] {
		if l.Len != want {
			return &MismatchedLengthError{Lengths: lengths}
		}
	}
	return nil
}

// Positive checks that a numeric argument is greater than zero and not NaN.
func Positive(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) {
		return &InvalidValueError{Name: name, Value: v, Reason: "must be greater than 0"}
	}
	return nil
}
