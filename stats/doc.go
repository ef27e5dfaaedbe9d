// Package stats provides the basic descriptive statistics the indicator
// packages consume: mean, median, mode, max, min, and true range.
//
// The scalar reductions follow the conventions of the rest of the library:
// NaN inputs are skipped, an empty slice reduces to a neutral sentinel (0 for
// Mean, NaN for the order statistics) rather than an error, and Mode rounds
// values to the nearest integer before counting. Validation belongs to the
// public indicator entry points; these helpers stay total so they can be
// called freely inside scan loops.
package stats
