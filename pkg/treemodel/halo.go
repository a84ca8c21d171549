package treemodel

// Halo is a dark-matter structure at a single snapshot, hosting one or more
// subhalos. Exactly one of its subhalos is CENTRAL once the central-subhalo
// definer has run; all others are SATELLITE.
type Halo struct {
	ID       HaloID
	Snapshot Snapshot

	Mvir          float64
	Vvir          float64
	Position      Vec3
	Velocity      Vec3
	Concentration float64
	Lambda        float64

	CentralSubhalo    *Subhalo
	SatelliteSubhalos []*Subhalo

	// Ascendants holds every earlier-snapshot halo linked to this one,
	// de-duplicated by id.
	Ascendants []*Halo
	Descendant *Halo

	Tree *MergerTree
}

// AllSubhalos returns every subhalo owned by this halo, central first when
// present, in the order the central-subhalo definer or the ingest layer
// populated them.
func (h *Halo) AllSubhalos() []*Subhalo {
	if h.CentralSubhalo == nil {
		return h.SatelliteSubhalos
	}
	all := make([]*Subhalo, 0, len(h.SatelliteSubhalos)+1)
	all = append(all, h.CentralSubhalo)
	all = append(all, h.SatelliteSubhalos...)
	return all
}

// RemoveSubhalo removes sub from the halo's satellite list (or clears
// CentralSubhalo if it matches). It reports whether sub was found.
func (h *Halo) RemoveSubhalo(sub *Subhalo) bool {
	if h.CentralSubhalo == sub {
		h.CentralSubhalo = nil
		return true
	}
	for i, s := range h.SatelliteSubhalos {
		if s == sub {
			h.SatelliteSubhalos = append(h.SatelliteSubhalos[:i], h.SatelliteSubhalos[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSatellite removes sub from the satellite list only, ignoring the
// central slot. Used by central-subhalo promotion to pull sub out of the
// satellite list before it is assigned to CentralSubhalo; it reports false
// when sub is not a satellite, even if sub is already the central.
func (h *Halo) RemoveSatellite(sub *Subhalo) bool {
	for i, s := range h.SatelliteSubhalos {
		if s == sub {
			h.SatelliteSubhalos = append(h.SatelliteSubhalos[:i], h.SatelliteSubhalos[i+1:]...)
			return true
		}
	}
	return false
}

// hasAscendant reports whether a is already recorded as an ascendant.
func (h *Halo) hasAscendant(a *Halo) bool {
	for _, existing := range h.Ascendants {
		if existing == a {
			return true
		}
	}
	return false
}

// AddAscendant inserts a into the ascendant set if not already present and
// reports whether the insertion was novel.
func (h *Halo) AddAscendant(a *Halo) bool {
	if h.hasAscendant(a) {
		return false
	}
	h.Ascendants = append(h.Ascendants, a)
	return true
}

// CentralCount returns the number of subhalos flagged CENTRAL (used by the
// Pass 2 validator; should be exactly 1 after a successful build).
func (h *Halo) CentralCount() int {
	count := 0
	if h.CentralSubhalo != nil {
		count++
	}
	for _, s := range h.SatelliteSubhalos {
		if s.IsCentral() {
			count++
		}
	}
	return count
}
