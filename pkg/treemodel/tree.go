package treemodel

import "sort"

// MergerTree is the connected subgraph of halos linked by descendant edges
// back from a single terminal-snapshot halo.
type MergerTree struct {
	ID              int
	HalosBySnapshot map[Snapshot][]*Halo
}

// NewMergerTree creates an empty tree with the given id.
func NewMergerTree(id int) *MergerTree {
	return &MergerTree{
		ID:              id,
		HalosBySnapshot: make(map[Snapshot][]*Halo),
	}
}

// AddHalo attaches h to the tree and records it under its snapshot bucket.
// It does not change h.Tree; callers own that assignment so that ownership
// transfer (seeding vs. backward propagation during linking) stays explicit.
func (t *MergerTree) AddHalo(h *Halo) {
	t.HalosBySnapshot[h.Snapshot] = append(t.HalosBySnapshot[h.Snapshot], h)
}

// Snapshots returns the distinct snapshots with at least one member halo, in
// ascending order.
func (t *MergerTree) Snapshots() []Snapshot {
	snaps := make([]Snapshot, 0, len(t.HalosBySnapshot))
	for s := range t.HalosBySnapshot {
		snaps = append(snaps, s)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i] < snaps[j] })
	return snaps
}

// HaloCount returns the total number of halos owned by the tree across all
// snapshots.
func (t *MergerTree) HaloCount() int {
	n := 0
	for _, halos := range t.HalosBySnapshot {
		n += len(halos)
	}
	return n
}
