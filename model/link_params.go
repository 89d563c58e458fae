package model

// LinkParameters describes one point-to-point radio link: the transmitter
// side, the receiver side, and the geometry between them. Values are plain
// scalars in the units given by the field names; validation of physical
// constraints (positive frequency and distance) happens in the evaluators,
// not here.
//
// A LinkParameters value is constructed per calculation, or taken from a
// preset such as A30. It is never mutated after construction.
type LinkParameters struct {
	// TxPowerDBm is the transmitter output power in dBm.
	TxPowerDBm float64

	// TxGainDBi and RxGainDBi are antenna gains referenced to an
	// isotropic radiator. Gains quoted in dBd convert via
	// core.DBdToDBi (dBi = dBd + 2.15).
	TxGainDBi float64
	RxGainDBi float64

	// FrequencyHz is the carrier frequency. Must be > 0 for every
	// evaluation; the evaluators reject anything else.
	FrequencyHz float64

	// DistanceM is the transmitter-receiver separation in metres.
	// It is an input when solving for received power and unused when
	// solving for range.
	DistanceM float64

	// RxPowerDBm is the power at the receiver in dBm. It is an input
	// when solving for range and unused when solving for received
	// power.
	RxPowerDBm float64
}
