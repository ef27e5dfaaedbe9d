// Package trend provides indicators that measure the direction and
// persistence of price movements.
//
// It includes the Parabolic Time Price System (Welles Wilder's
// stop-and-reverse variant), the Directional Movement System
// (+DI, -DI, ADX, ADXR), the Aroon family, the Volume Price Trend, and the
// True Strength Index.
//
// Single-value functions compute one step or one window; Rolling variants
// sweep a full series. The stateful scans (SAR, directional movement) thread
// their state through the loop of a single call and retain nothing across
// calls.
package trend
