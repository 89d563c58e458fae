package core

import (
	"errors"
	"math"
	"testing"
)

// TestReceivedPowerReferenceCase evaluates the worked example used to pin
// the formula: Pt=40 dBm, 0 dBd (2.15 dBi) antennas, 170 MHz, 1000 m.
// wavelength = 299792458/170e6 ~ 1.7635 m, lambda/(4*pi*d) ~ 1.4033e-4,
// so Pr ~ 40 + 4.3 - 77.06 ~ -32.76 dBm.
func TestReceivedPowerReferenceCase(t *testing.T) {
	const (
		pt = 40.0
		gt = 2.15
		gr = 2.15
		f  = 170e6
		d  = 1000.0
	)

	got, err := ReceivedPowerDBm(pt, gt, gr, f, d)
	if err != nil {
		t.Fatalf("ReceivedPowerDBm: %v", err)
	}

	want := pt + gt + gr + 20*math.Log10((SpeedOfLight/f)/(4*math.Pi*d))
	if math.Abs(got-want)/math.Abs(want) > 1e-9 {
		t.Errorf("ReceivedPowerDBm = %v, want %v", got, want)
	}
	if math.Abs(got-(-32.76)) > 0.01 {
		t.Errorf("ReceivedPowerDBm = %v, want ~-32.76 dBm", got)
	}
}

func TestReceivedPowerRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		f, d float64
	}{
		{"zero frequency", 0, 1000},
		{"negative frequency", -170e6, 1000},
		{"zero distance", 170e6, 0},
		{"negative distance", 170e6, -5},
	}
	for _, tc := range cases {
		if _, err := ReceivedPowerDBm(40, 2.15, 2.15, tc.f, tc.d); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: error = %v, want ErrInvalidInput", tc.name, err)
		}
	}
}

func TestRangeRejectsInvalidFrequency(t *testing.T) {
	for _, f := range []float64{0, -122.925e6} {
		if _, err := RangeMeters(36.99, 2.15, 2.15, -65.9, f); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("RangeMeters(f=%g) error = %v, want ErrInvalidInput", f, err)
		}
	}
}

// TestRangeInvertsReceivedPower feeds the received power at a known
// distance back into the range form. The range form's 41.88 is a rounded
// engineering constant (exact would be 4*pi*1e9/c ~ 41.917), so the round
// trip agrees to ~0.1%, not machine precision.
func TestRangeInvertsReceivedPower(t *testing.T) {
	const (
		pt = 36.98970004336019 // 5 W
		gt = 2.15
		gr = 2.15
		f  = 122.925e6
	)

	for _, d := range []float64{100, 1000, 44448, 92600, 250000} {
		pr, err := ReceivedPowerDBm(pt, gt, gr, f, d)
		if err != nil {
			t.Fatalf("ReceivedPowerDBm(d=%g): %v", d, err)
		}
		got, err := RangeMeters(pt, gt, gr, pr, f)
		if err != nil {
			t.Fatalf("RangeMeters(d=%g): %v", d, err)
		}
		if rel := math.Abs(got-d) / d; rel > 2e-3 {
			t.Errorf("RangeMeters round trip at d=%g: got %v (rel err %v)", d, got, rel)
		}
	}
}

// TestTransmitPowerInvertsReceivedPower checks the third solver: the
// transmit power that delivers a given received power at a distance is the
// exact algebraic inverse, so here the round trip is tight.
func TestTransmitPowerInvertsReceivedPower(t *testing.T) {
	const (
		pt = 40.0
		gt = 2.15
		gr = 0.0
		f  = 170e6
		d  = 20000.0
	)

	pr, err := ReceivedPowerDBm(pt, gt, gr, f, d)
	if err != nil {
		t.Fatalf("ReceivedPowerDBm: %v", err)
	}
	got, err := TransmitPowerDBm(gt, gr, pr, f, d)
	if err != nil {
		t.Fatalf("TransmitPowerDBm: %v", err)
	}
	if math.Abs(got-pt) > 1e-9 {
		t.Errorf("TransmitPowerDBm = %v, want %v", got, pt)
	}

	if _, err := TransmitPowerDBm(gt, gr, pr, 0, d); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("TransmitPowerDBm(f=0) error = %v, want ErrInvalidInput", err)
	}
	if _, err := TransmitPowerDBm(gt, gr, pr, f, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("TransmitPowerDBm(d=0) error = %v, want ErrInvalidInput", err)
	}
}

// TestReceivedPowerMonotonicInDistance: free-space path loss grows with
// distance, so received power must strictly decrease.
func TestReceivedPowerMonotonicInDistance(t *testing.T) {
	prev := math.Inf(1)
	for _, d := range []float64{10, 100, 1000, 10000, 100000} {
		pr, err := ReceivedPowerDBm(40, 2.15, 2.15, 170e6, d)
		if err != nil {
			t.Fatalf("ReceivedPowerDBm(d=%g): %v", d, err)
		}
		if pr >= prev {
			t.Errorf("ReceivedPowerDBm(d=%g) = %v, not below %v", d, pr, prev)
		}
		prev = pr
	}
}

// TestPathLossMatchesReceivedPower: the loss form and the received-power
// form are the same physics, so Pt - PL must equal Pr.
func TestPathLossMatchesReceivedPower(t *testing.T) {
	const (
		pt = 36.98970004336019
		gt = 2.15
		gr = 2.15
		f  = 122.925e6
		d  = 9.144 // 30 ft
	)

	pl, err := PathLossDB(gt, gr, f, d)
	if err != nil {
		t.Fatalf("PathLossDB: %v", err)
	}
	pr, err := ReceivedPowerDBm(pt, gt, gr, f, d)
	if err != nil {
		t.Fatalf("ReceivedPowerDBm: %v", err)
	}
	if math.Abs((pt-pl)-pr) > 1e-9 {
		t.Errorf("Pt - PathLoss = %v, want %v", pt-pl, pr)
	}

	if _, err := PathLossDB(gt, gr, f, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PathLossDB(d=0) error = %v, want ErrInvalidInput", err)
	}
	if _, err := PathLossDB(gt, gr, 0, d); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("PathLossDB(f=0) error = %v, want ErrInvalidInput", err)
	}
}
