package displayscale

import "testing"

func TestCorrection_OverrideDivides(t *testing.T) {
	fn := Correction(2, nil)
	if got := fn(100); got != 50 {
		t.Fatalf("expected 50 at 2x scale, got %v", got)
	}
}

func TestCorrection_IdentityAtOne(t *testing.T) {
	fn := Correction(1, nil)
	if got := fn(123.5); got != 123.5 {
		t.Fatalf("identity changed the value: %v", got)
	}
}

func TestCorrection_NonPositiveOverrideFallsBack(t *testing.T) {
	fn := Correction(0, nil)
	if fn == nil {
		t.Fatalf("expected usable correction function")
	}
	if got := fn(0); got != 0 {
		t.Fatalf("zero must map to zero, got %v", got)
	}
}
