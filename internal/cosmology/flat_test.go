package cosmology

import "testing"

func TestFlat_UniversalBaryonFraction(t *testing.T) {
	f := Flat{BaryonFraction: 0.17}
	if got := f.UniversalBaryonFraction(); got != 0.17 {
		t.Fatalf("expected 0.17, got %v", got)
	}
}

func TestPlanck2018(t *testing.T) {
	f := Planck2018()
	got := f.UniversalBaryonFraction()
	if got <= 0 || got >= 1 {
		t.Fatalf("expected a fraction in (0, 1), got %v", got)
	}
	want := 0.0493 / 0.3153
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
