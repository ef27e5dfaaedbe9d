package chart

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quantfold/gotrend/validate"
)

// TrendBreakConfig tunes the break policy of BreakdownTrends.
//
// A soft break needs all three weak signals at once: adjusted R² below
// SoftAdjRSquaredMinimum, RMSE above SoftRMSEMultiplier times the previous
// accepted RMSE, and a Durbin–Watson statistic outside the soft band. A hard
// break fires on any single strong signal against the hard thresholds.
// MaxOutliers break candidates are skipped as transients before a segment is
// forcibly split.
//
// Durbin–Watson lives in (0, 4); near 2 means little residual
// autocorrelation, below 1 or above 3 means strongly structured residuals.
type TrendBreakConfig struct {
	MaxOutliers            int     `yaml:"max_outliers"`
	SoftAdjRSquaredMinimum float64 `yaml:"soft_adj_r_squared_minimum"`
	HardAdjRSquaredMinimum float64 `yaml:"hard_adj_r_squared_minimum"`
	SoftRMSEMultiplier     float64 `yaml:"soft_rmse_multiplier"`
	HardRMSEMultiplier     float64 `yaml:"hard_rmse_multiplier"`
	SoftDurbinWatsonMin    float64 `yaml:"soft_durbin_watson_min"`
	SoftDurbinWatsonMax    float64 `yaml:"soft_durbin_watson_max"`
	HardDurbinWatsonMin    float64 `yaml:"hard_durbin_watson_min"`
	HardDurbinWatsonMax    float64 `yaml:"hard_durbin_watson_max"`
}

// DefaultTrendBreakConfig returns thresholds that tolerate one transient
// outlier per segment and split on moderately degraded fits.
func DefaultTrendBreakConfig() TrendBreakConfig {
	return TrendBreakConfig{
		MaxOutliers:            1,
		SoftAdjRSquaredMinimum: 0.25,
		HardAdjRSquaredMinimum: 0.05,
		SoftRMSEMultiplier:     1.3,
		HardRMSEMultiplier:     2.0,
		SoftDurbinWatsonMin:    1.0,
		SoftDurbinWatsonMax:    3.0,
		HardDurbinWatsonMin:    0.7,
		HardDurbinWatsonMax:    3.3,
	}
}

// ParseTrendBreakConfig unmarshals YAML on top of the defaults and validates
// the result. Fields absent from the document keep their default values.
func ParseTrendBreakConfig(data []byte) (TrendBreakConfig, error) {
	cfg := DefaultTrendBreakConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TrendBreakConfig{}, fmt.Errorf("parse trend break config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TrendBreakConfig{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the segmentation scan cannot use.
func (c TrendBreakConfig) Validate() error {
	if c.MaxOutliers < 0 {
		return &validate.InvalidValueError{
			Name: "max_outliers", Value: float64(c.MaxOutliers), Reason: "must not be negative",
		}
	}
	if err := validate.Positive("soft_rmse_multiplier", c.SoftRMSEMultiplier); err != nil {
		return err
	}
	if err := validate.Positive("hard_rmse_multiplier", c.HardRMSEMultiplier); err != nil {
		return err
	}
	if c.SoftDurbinWatsonMin >= c.SoftDurbinWatsonMax {
		return &validate.InvalidValueError{
			Name: "soft_durbin_watson_min", Value: c.SoftDurbinWatsonMin,
			Reason: "must be below soft_durbin_watson_max",
		}
	}
	if c.HardDurbinWatsonMin >= c.HardDurbinWatsonMax {
		return &validate.InvalidValueError{
			Name: "hard_durbin_watson_min", Value: c.HardDurbinWatsonMin,
			Reason: "must be below hard_durbin_watson_max",
		}
	}
	return nil
}
