package model

// BenchSetup describes the physical bench of a conducted-over-the-air range
// test: the radio under test on one antenna, an RF test set on the other,
// and a known separation between them. The margins widen the computed loss
// so that a radio passing the bench figure also passes in the field.
type BenchSetup struct {
	// SeparationM is the distance between the two bench antennas in
	// metres.
	SeparationM float64

	// MinSeparationM is the smallest separation the procedure accepts,
	// in metres. The far-field distance (2x wavelength) is always
	// enforced as well; whichever is larger wins. Zero means only the
	// far-field limit applies.
	MinSeparationM float64

	// AccuracyDB is the RF level accuracy of the test set in dB.
	AccuracyDB float64

	// UncertaintyDB covers minor bench differences such as antenna
	// placement, in dB.
	UncertaintyDB float64
}
