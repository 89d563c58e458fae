package model

// FS/OAS A-30 wildland-fire radio range test. These are the published
// equipment parameters of the procedure, recorded as data: the frequency is
// locked (range changes from frequency differences are offset by
// corresponding changes in path loss, so the single frequency covers the AM
// and FM bands), the radio transmits 5 W, and both bench antennas are
// standard 0 dBd aviation antennas.
const (
	// A30FrequencyHz is the locked test frequency, 122.925 MHz.
	A30FrequencyHz = 122.925e6

	// A30TxPowerW and A30TxPowerDBm are the same 5 W transmit power in
	// both conventions. The dBm figure is 10*log10(5000).
	A30TxPowerW   = 5.0
	A30TxPowerDBm = 36.98970004336019

	// A30AntennaGainDBi is the gain of the 0 dBd aviation antennas used
	// on both ends.
	A30AntennaGainDBi = 2.15

	// A30AccuracyDB is the RF level accuracy of the IFR 4000 test set.
	A30AccuracyDB = 2.0

	// A30UncertaintyDB accounts for minor differences such as antenna
	// placement.
	A30UncertaintyDB = 1.0

	// A30MinSeparationM is the 20 ft minimum antenna separation the
	// procedure requires.
	A30MinSeparationM = 6.096

	// A30RangeMark24NmiM and A30RangeMark50NmiM are the two range marks
	// the procedure certifies against, in metres (24 nmi and 50 nmi).
	A30RangeMark24NmiM = 44448.0
	A30RangeMark50NmiM = 92600.0
)

// A30 returns the link parameters of the FS/OAS A-30 test. Construction is
// pure data; calling it twice yields equal values.
func A30() LinkParameters {
	return LinkParameters{
		TxPowerDBm:  A30TxPowerDBm,
		TxGainDBi:   A30AntennaGainDBi,
		RxGainDBi:   A30AntennaGainDBi,
		FrequencyHz: A30FrequencyHz,
	}
}

// A30Bench returns the bench setup of the FS/OAS A-30 test for the given
// antenna separation in metres.
func A30Bench(separationM float64) BenchSetup {
	return BenchSetup{
		SeparationM:    separationM,
		MinSeparationM: A30MinSeparationM,
		AccuracyDB:     A30AccuracyDB,
		UncertaintyDB:  A30UncertaintyDB,
	}
}
