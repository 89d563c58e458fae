// Package core evaluates the Friis free-space transmission equation in
// decibel form and the unit conversions around it. Everything in this file
// is a pure function: same inputs, same outputs, no state.
package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for physically invalid quantities: a
// non-positive frequency, distance, separation or wattage. Evaluations
// never clamp or return NaN/Inf for these; they fail up front.
var ErrInvalidInput = errors.New("invalid input")

// rangeDivisor is the 41.88 of the classic engineering range form
//
//	Range(m) = 10^((Pt + Gt + Gr - Pr + 180) / 20) / (41.88 * f_Hz)
//
// It carries the unit normalization of that parameterization and is a
// rounded constant: the exact value would be 4*pi*1e9/c (~41.917), so
// RangeMeters inverts ReceivedPowerDBm only to about 0.1%. The published
// A-30 figures are computed with 41.88, so it is kept as-is.
const rangeDivisor = 41.88

// ReceivedPowerDBm evaluates the Friis equation
//
//	Pr = Pt + Gt + Gr + 20*log10(wavelength / (4*pi*d))
//
// returning the free-space received power in dBm for a transmitter of
// txPowerDBm with antenna gains in dBi, at the given frequency and
// distance.
func ReceivedPowerDBm(txPowerDBm, txGainDBi, rxGainDBi, frequencyHz, distanceM float64) (float64, error) {
	wl, err := Wavelength(frequencyHz)
	if err != nil {
		return 0, err
	}
	if distanceM <= 0 {
		return 0, fmt.Errorf("%w: distance %g m, must be > 0", ErrInvalidInput, distanceM)
	}
	return txPowerDBm + txGainDBi + rxGainDBi + 20*math.Log10(wl/(4*math.Pi*distanceM)), nil
}

// RangeMeters solves the Friis equation for distance: the range at which
// the received power falls to rxPowerDBm. The result is surfaced as-is for
// any finite inputs with a positive frequency.
func RangeMeters(txPowerDBm, txGainDBi, rxGainDBi, rxPowerDBm, frequencyHz float64) (float64, error) {
	if frequencyHz <= 0 {
		return 0, fmt.Errorf("%w: frequency %g Hz, must be > 0", ErrInvalidInput, frequencyHz)
	}
	return math.Pow(10, (txPowerDBm+txGainDBi+rxGainDBi-rxPowerDBm+180)/20) / (rangeDivisor * frequencyHz), nil
}

// TransmitPowerDBm solves the Friis equation for transmit power: the power
// needed to deliver rxPowerDBm at the given distance.
func TransmitPowerDBm(txGainDBi, rxGainDBi, rxPowerDBm, frequencyHz, distanceM float64) (float64, error) {
	wl, err := Wavelength(frequencyHz)
	if err != nil {
		return 0, err
	}
	if distanceM <= 0 {
		return 0, fmt.Errorf("%w: distance %g m, must be > 0", ErrInvalidInput, distanceM)
	}
	return rxPowerDBm - txGainDBi - rxGainDBi - 20*math.Log10(wl/(4*math.Pi*distanceM)), nil
}

// PathLossDB returns the free-space loss between two antennas of the given
// gains, in dB:
//
//	20*log10(d) + 20*log10(f) + 20*log10(4*pi/c) - Gt - Gr
//
// This is the same physics as ReceivedPowerDBm rearranged as a loss, which
// is how bench procedures quote it.
func PathLossDB(txGainDBi, rxGainDBi, frequencyHz, distanceM float64) (float64, error) {
	if frequencyHz <= 0 {
		return 0, fmt.Errorf("%w: frequency %g Hz, must be > 0", ErrInvalidInput, frequencyHz)
	}
	if distanceM <= 0 {
		return 0, fmt.Errorf("%w: distance %g m, must be > 0", ErrInvalidInput, distanceM)
	}
	return 20*math.Log10(distanceM) +
		20*math.Log10(frequencyHz) +
		20*math.Log10(4*math.Pi/SpeedOfLight) -
		txGainDBi -
		rxGainDBi, nil
}
