// Package cosmology supplies the narrow cosmological quantities the
// merger-tree builder needs. The full cosmology engine (distances, growth
// factors, power spectra) is an external collaborator out of scope for this
// module; only the single scalar the accretion calculator depends on lives
// here.
package cosmology

import "github.com/galform/mergertree/pkg/treemodel"

// Flat is a constant-baryon-fraction cosmology, suitable for tests and for
// running the builder standalone without wiring a real cosmology engine.
type Flat struct {
	BaryonFraction float64
}

var _ treemodel.CosmologySource = Flat{}

// UniversalBaryonFraction returns the configured constant fraction.
func (f Flat) UniversalBaryonFraction() float64 {
	return f.BaryonFraction
}

// Planck2018 is a convenience constructor matching the Planck 2018 best-fit
// Omega_b / Omega_m ratio, for callers that want a reasonable default rather
// than supplying their own.
func Planck2018() Flat {
	return Flat{BaryonFraction: 0.0493 / 0.3153}
}
