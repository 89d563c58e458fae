package core

import (
	"fmt"
	"math"
)

// SpeedOfLight is the propagation speed used for all wavelength
// conversions, in metres per second.
const SpeedOfLight = 2.99792458e8

// DipoleGainDBi is the gain of a half-wave dipole over an isotropic
// radiator. It is the fixed offset between the dBd and dBi conventions.
const DipoleGainDBi = 2.15

const (
	metersPerFoot = 0.3048

	// MetersPerNauticalMile converts between the SI distances used in
	// the formulas and the nautical miles the range marks are quoted in.
	MetersPerNauticalMile = 1852.0
)

// Wavelength converts a frequency in Hz to a wavelength in metres.
func Wavelength(frequencyHz float64) (float64, error) {
	if frequencyHz <= 0 {
		return 0, fmt.Errorf("%w: frequency %g Hz, must be > 0", ErrInvalidInput, frequencyHz)
	}
	return SpeedOfLight / frequencyHz, nil
}

// FarFieldDistance returns the minimum separation, in metres, at which two
// antennas at the given frequency are in each other's far field. Closer
// than this the free-space model does not hold and bench measurements are
// invalid. The limit used here is twice the wavelength.
func FarFieldDistance(frequencyHz float64) (float64, error) {
	wl, err := Wavelength(frequencyHz)
	if err != nil {
		return 0, err
	}
	return 2 * wl, nil
}

// DBdToDBi converts an antenna gain referenced to a dipole into one
// referenced to an isotropic radiator.
func DBdToDBi(gainDBd float64) float64 { return gainDBd + DipoleGainDBi }

// DBiToDBd is the inverse of DBdToDBi.
func DBiToDBd(gainDBi float64) float64 { return gainDBi - DipoleGainDBi }

// WattsToDBm converts a power in watts to dBm.
func WattsToDBm(watts float64) (float64, error) {
	if watts <= 0 {
		return 0, fmt.Errorf("%w: power %g W, must be > 0", ErrInvalidInput, watts)
	}
	return 10 * math.Log10(watts*1000), nil
}

// DBmToWatts converts a power in dBm to watts. Defined for all finite
// inputs.
func DBmToWatts(dbm float64) float64 {
	return math.Pow(10, dbm/10) / 1000
}

// FeetToMeters converts feet to metres.
func FeetToMeters(ft float64) float64 { return ft * metersPerFoot }

// MetersToFeet converts metres to feet.
func MetersToFeet(m float64) float64 { return m / metersPerFoot }

// MetersToNauticalMiles converts metres to nautical miles.
func MetersToNauticalMiles(m float64) float64 { return m / MetersPerNauticalMile }

// NauticalMilesToMeters converts nautical miles to metres.
func NauticalMilesToMeters(nmi float64) float64 { return nmi * MetersPerNauticalMile }
