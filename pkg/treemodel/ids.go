// Package treemodel defines the entity model for merger-tree construction:
// halos, subhalos, merger trees, and the identifiers and small value types
// that tie them together.
package treemodel

// HaloID uniquely identifies a halo across the whole simulation.
type HaloID int64

// SubhaloID uniquely identifies a subhalo across the whole simulation.
type SubhaloID int64

// Snapshot is a time-slice index of the underlying simulation. Larger
// values are later cosmic times.
type Snapshot int32

// Vec3 is a 3-component physical vector (position, velocity, angular
// momentum).
type Vec3 [3]float64

// SubhaloType classifies a subhalo's role within its host halo.
type SubhaloType uint8

const (
	// SubhaloUndetermined is the initial state before the central-subhalo
	// definer has visited a subhalo.
	SubhaloUndetermined SubhaloType = iota
	// SubhaloCentral marks the subhalo hosting the halo's central galaxy.
	SubhaloCentral
	// SubhaloSatellite marks every other subhalo in the halo.
	SubhaloSatellite
)

// String returns the human-readable name of the subhalo type.
func (t SubhaloType) String() string {
	switch t {
	case SubhaloCentral:
		return "central"
	case SubhaloSatellite:
		return "satellite"
	default:
		return "undetermined"
	}
}
