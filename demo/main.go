// Package main walks through the gotrend indicators on a sample of daily
// OHLCV bars: trend segmentation, peaks and valleys, the Parabolic Time
// Price System, the Directional Movement System, Aroon, the Volume Price
// Trend, and the True Strength Index.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/quantfold/gotrend/chart"
	"github.com/quantfold/gotrend/smoothing"
	"github.com/quantfold/gotrend/trend"
)

// Daily bars with a long climb, a rounded top, and a sell-off, so every
// indicator has something to react to.
var (
	highs = []float64{
		52.35, 52.1, 51.8, 52.1, 52.5, 52.8, 52.5, 53.5, 53.5, 53.8, 54.2,
		53.4, 53.5, 54.4, 55.2, 55.7, 57.0, 57.5, 58.0, 57.7, 58.0, 57.5,
		57.0, 56.7, 57.5, 56.7, 56.0, 56.2, 54.8, 55.5, 54.7, 54.0, 52.5,
		51.0, 51.5, 51.7, 53.0,
	}
	lows = []float64{
		51.5, 51.0, 50.5, 51.25, 51.7, 51.85, 51.5, 52.5, 52.5, 53.0, 52.5,
		52.5, 52.1, 53.0, 54.0, 55.0, 56.0, 56.5, 57.0, 56.5, 57.3, 56.7,
		56.3, 56.2, 56.0, 55.5, 55.0, 54.9, 54.0, 54.5, 53.8, 53.0, 51.5,
		50.0, 50.5, 50.2, 51.5,
	}
	closes = []float64{
		52.0, 51.5, 51.1, 51.9, 52.2, 52.5, 52.0, 53.2, 53.1, 53.5, 53.2,
		52.9, 53.1, 54.1, 54.9, 55.5, 56.8, 57.2, 57.8, 57.1, 57.8, 57.0,
		56.5, 56.4, 56.9, 55.9, 55.3, 55.6, 54.3, 55.1, 54.1, 53.3, 51.8,
		50.4, 51.1, 51.3, 52.6,
	}
	volumes = []float64{
		1040, 980, 1210, 990, 1100, 1320, 1150, 1400, 1230, 1280, 1190,
		1050, 1130, 1510, 1620, 1480, 1750, 1690, 1820, 1440, 1530, 1380,
		1290, 1220, 1340, 1460, 1390, 1250, 1580, 1310, 1420, 1550, 1880,
		2100, 1720, 1540,
	}
)

const trendConfigYAML = `
max_outliers: 1
soft_rmse_multiplier: 1.4
hard_rmse_multiplier: 2.2
`

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	log.Info().Int("bars", len(closes)).Msg("gotrend walkthrough")

	cfg, err := chart.ParseTrendBreakConfig([]byte(trendConfigYAML))
	if err != nil {
		log.Fatal().Err(err).Msg("parse trend break config")
	}

	segments, err := chart.BreakdownTrends(closes, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("break down trends")
	}
	for _, s := range segments {
		log.Info().
			Int("start", s.Start).Int("end", s.End).
			Float64("slope", s.Slope).Float64("intercept", s.Intercept).
			Msg("trend segment")
	}

	peaks, err := chart.Peaks(closes, 10, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("find peaks")
	}
	valleys, err := chart.Valleys(closes, 10, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("find valleys")
	}
	log.Info().Int("peaks", len(peaks)).Int("valleys", len(valleys)).Msg("extrema")

	slope, intercept, err := chart.OverallTrend(closes)
	if err != nil {
		log.Fatal().Err(err).Msg("overall trend")
	}
	log.Info().Float64("slope", slope).Float64("intercept", intercept).Msg("overall trend")

	sars, err := trend.ParabolicTimePriceSystem(highs, lows, 0.02, 0.2, 0.02, trend.Long, 50.0)
	if err != nil {
		log.Fatal().Err(err).Msg("parabolic time price system")
	}
	log.Info().
		Float64("first", sars[0]).Float64("last", sars[len(sars)-1]).
		Msg("parabolic SAR trajectory")

	dms, err := trend.DirectionalMovementSystem(highs, lows, closes, 5, smoothing.SimpleMovingAverage)
	if err != nil {
		log.Fatal().Err(err).Msg("directional movement system")
	}
	latest := dms[len(dms)-1]
	log.Info().
		Float64("plus_di", latest.PlusDI).Float64("minus_di", latest.MinusDI).
		Float64("adx", latest.ADX).Float64("adxr", latest.ADXR).
		Msg("directional movement")

	aroons, err := trend.RollingAroonIndicator(highs, lows, 10)
	if err != nil {
		log.Fatal().Err(err).Msg("aroon indicator")
	}
	lastAroon := aroons[len(aroons)-1]
	log.Info().
		Float64("up", lastAroon.Up).Float64("down", lastAroon.Down).
		Float64("oscillator", lastAroon.Oscillator).
		Msg("aroon")

	vpts, err := trend.VolumePriceTrendSeries(closes, volumes, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("volume price trend")
	}
	log.Info().Float64("latest", vpts[len(vpts)-1]).Msg("volume price trend")

	tsi, err := trend.TrueStrengthIndex(closes, smoothing.ExponentialMovingAverage, 25, smoothing.ExponentialMovingAverage)
	if err != nil {
		log.Fatal().Err(err).Msg("true strength index")
	}
	log.Info().Float64("tsi", tsi).Msg("true strength index")
}
