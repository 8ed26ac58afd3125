// Package core holds the level conversions shared by the measurement and
// display packages.
//
// Amplitude ratios use 20*log10, power ratios 10*log10.
package core

import "math"

// DBToAmplitude converts dB to a linear amplitude ratio.
func DBToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}

// AmplitudeToDB converts a linear amplitude ratio to dB.
// Returns -Inf for zero and NaN for negative values.
func AmplitudeToDB(ratio float64) float64 {
	switch {
	case ratio < 0:
		return math.NaN()
	case ratio == 0:
		return math.Inf(-1)
	}
	return 20 * math.Log10(ratio)
}

// DBToPower converts dB to a linear power ratio.
func DBToPower(db float64) float64 {
	return math.Pow(10, db/10)
}

// PowerToDB converts a linear power ratio to dB.
// Returns -Inf for zero and NaN for negative values.
func PowerToDB(ratio float64) float64 {
	switch {
	case ratio < 0:
		return math.NaN()
	case ratio == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(ratio)
}

// Floor returns db, raised to floor when it is lower or NaN.
func Floor(db, floor float64) float64 {
	if math.IsNaN(db) || db < floor {
		return floor
	}
	return db
}
