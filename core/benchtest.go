package core

import (
	"errors"
	"fmt"

	"github.com/signalsfoundry/linkbudget/logging"
	"github.com/signalsfoundry/linkbudget/model"
	"github.com/signalsfoundry/linkbudget/observability"
)

// BenchTest models a conducted-over-the-air range test: the radio under
// test drives one bench antenna, an RF test set listens on the other, and
// the separation between them stands in for the field path. From the link
// parameters and the bench setup it derives the effective bench loss, the
// test-set RF levels that certify a range mark, and the maximum effective
// range implied by a measured RF level.
//
// All methods are pure given their inputs; the struct carries only
// configuration and ambient dependencies, so a single BenchTest is safe to
// share across goroutines.
type BenchTest struct {
	Params model.LinkParameters
	Setup  model.BenchSetup

	// Log receives debug records for each evaluation. Defaults to Noop
	// when constructed via NewBenchTest.
	Log logging.Logger

	// Metrics counts evaluations and observed ranges. Nil disables
	// instrumentation.
	Metrics *observability.EvaluationCollector
}

// NewBenchTest builds a BenchTest for the given link parameters and bench
// setup with logging silenced and metrics unwired.
func NewBenchTest(params model.LinkParameters, setup model.BenchSetup) *BenchTest {
	return &BenchTest{
		Params: params,
		Setup:  setup,
		Log:    logging.Noop(),
	}
}

// NewA30BenchTest builds a BenchTest locked to the FS/OAS A-30 parameters
// with the given antenna separation in metres.
func NewA30BenchTest(separationM float64) *BenchTest {
	return NewBenchTest(model.A30(), model.A30Bench(separationM))
}

// EffectiveLossDB returns the bench loss in dB between the test set and the
// radio under test: the free-space path loss across the bench separation
// widened by the test set's RF level accuracy and the placement
// uncertainty. The separation must be outside the far field (2x wavelength)
// and at least Setup.MinSeparationM.
func (bt *BenchTest) EffectiveLossDB() (float64, error) {
	loss, err := bt.effectiveLoss()
	bt.record("effective_loss", err)
	if err != nil {
		return 0, err
	}
	bt.logger().Debug("effective bench loss computed",
		logging.Float64("separation_m", bt.Setup.SeparationM),
		logging.Float64("effective_loss_db", loss),
	)
	return loss, nil
}

func (bt *BenchTest) effectiveLoss() (float64, error) {
	minSep, err := FarFieldDistance(bt.Params.FrequencyHz)
	if err != nil {
		return 0, err
	}
	if bt.Setup.MinSeparationM > minSep {
		minSep = bt.Setup.MinSeparationM
	}
	if bt.Setup.SeparationM < minSep {
		return 0, fmt.Errorf("%w: separation %.2f m, antennas must be at least %.2f m apart",
			ErrInvalidInput, bt.Setup.SeparationM, minSep)
	}

	pathLoss, err := PathLossDB(bt.Params.TxGainDBi, bt.Params.RxGainDBi, bt.Params.FrequencyHz, bt.Setup.SeparationM)
	if err != nil {
		return 0, err
	}
	return pathLoss + bt.Setup.AccuracyDB + bt.Setup.UncertaintyDB, nil
}

// RFLimitDBm returns the minimum test-set RF level, in dBm, that simulates
// the given range for the radio under test: the Friis received power at
// rangeM plus the effective bench loss. The A-30 procedure evaluates this
// at the 24 nmi and 50 nmi marks.
func (bt *BenchTest) RFLimitDBm(rangeM, effectiveLossDB float64) (float64, error) {
	p := bt.Params
	pr, err := ReceivedPowerDBm(p.TxPowerDBm, p.TxGainDBi, p.RxGainDBi, p.FrequencyHz, rangeM)
	bt.record("rf_limit", err)
	if err != nil {
		return 0, err
	}
	limit := pr + effectiveLossDB
	bt.logger().Debug("rf limit computed",
		logging.Float64("range_m", rangeM),
		logging.Float64("rf_limit_dbm", limit),
	)
	return limit, nil
}

// MaxRangeMeters returns the radio's maximum effective range in metres for
// a measured test-set RF level: the level corrected by the effective bench
// loss gives the power actually reaching the receiver, and the Friis range
// form solves for distance.
func (bt *BenchTest) MaxRangeMeters(testSetRFDBm, effectiveLossDB float64) (float64, error) {
	p := bt.Params
	effectiveRx := testSetRFDBm - effectiveLossDB
	rangeM, err := RangeMeters(p.TxPowerDBm, p.TxGainDBi, p.RxGainDBi, effectiveRx, p.FrequencyHz)
	bt.record("max_range", err)
	if err != nil {
		return 0, err
	}
	bt.Metrics.ObserveMaxRange(MetersToNauticalMiles(rangeM))
	bt.logger().Debug("max effective range computed",
		logging.Float64("test_set_rf_dbm", testSetRFDBm),
		logging.Float64("range_m", rangeM),
	)
	return rangeM, nil
}

func (bt *BenchTest) logger() logging.Logger {
	if bt.Log == nil {
		return logging.Noop()
	}
	return bt.Log
}

func (bt *BenchTest) record(operation string, err error) {
	outcome := observability.OutcomeOK
	if errors.Is(err, ErrInvalidInput) {
		outcome = observability.OutcomeInvalidInput
	}
	bt.Metrics.RecordEvaluation(operation, outcome)
}
