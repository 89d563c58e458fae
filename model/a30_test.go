package model

import "testing"

// TestA30IsDeterministic: the preset is pure data; two constructions are
// equal and carry the published literals.
func TestA30IsDeterministic(t *testing.T) {
	a, b := A30(), A30()
	if a != b {
		t.Fatalf("A30() not deterministic: %+v vs %+v", a, b)
	}

	if a.FrequencyHz != 122.925e6 {
		t.Errorf("FrequencyHz = %v, want 122.925e6", a.FrequencyHz)
	}
	if a.TxPowerDBm != A30TxPowerDBm {
		t.Errorf("TxPowerDBm = %v, want %v", a.TxPowerDBm, A30TxPowerDBm)
	}
	if a.TxGainDBi != 2.15 || a.RxGainDBi != 2.15 {
		t.Errorf("antenna gains = %v/%v, want 2.15/2.15", a.TxGainDBi, a.RxGainDBi)
	}
	if a.DistanceM != 0 || a.RxPowerDBm != 0 {
		t.Errorf("unknowns should be zero in the preset: %+v", a)
	}
}

func TestA30Bench(t *testing.T) {
	s := A30Bench(9.144)
	if s != A30Bench(9.144) {
		t.Fatalf("A30Bench not deterministic")
	}
	if s.SeparationM != 9.144 {
		t.Errorf("SeparationM = %v, want 9.144", s.SeparationM)
	}
	if s.MinSeparationM != 6.096 {
		t.Errorf("MinSeparationM = %v, want 6.096 (20 ft)", s.MinSeparationM)
	}
	if s.AccuracyDB != 2 || s.UncertaintyDB != 1 {
		t.Errorf("margins = %v/%v, want 2/1", s.AccuracyDB, s.UncertaintyDB)
	}
}
