package treemodel

// AllBaryons is the global per-snapshot baryon accumulator. The accretion
// calculator's phase B writes the running total of created baryon mass into
// it, one entry per snapshot.
type AllBaryons struct {
	totals map[Snapshot]float64
}

// NewAllBaryons creates an accumulator zero-filled for the given snapshots.
func NewAllBaryons(snapshots []Snapshot) *AllBaryons {
	b := &AllBaryons{totals: make(map[Snapshot]float64, len(snapshots))}
	b.ZeroFill(snapshots)
	return b
}

// ZeroFill ensures every given snapshot has an entry, without disturbing
// snapshots already present.
func (b *AllBaryons) ZeroFill(snapshots []Snapshot) {
	for _, s := range snapshots {
		if _, ok := b.totals[s]; !ok {
			b.totals[s] = 0
		}
	}
}

// Get returns the running baryon total at snapshot s.
func (b *AllBaryons) Get(s Snapshot) float64 {
	return b.totals[s]
}

// Set overwrites the running baryon total at snapshot s.
func (b *AllBaryons) Set(s Snapshot, total float64) {
	b.totals[s] = total
}

// BaryonTotalCreated returns the full snapshot-to-total map. Callers must
// not mutate the returned map.
func (b *AllBaryons) BaryonTotalCreated() map[Snapshot]float64 {
	return b.totals
}
