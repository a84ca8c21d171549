package treebuild

import (
	"sort"

	"github.com/galform/mergertree/pkg/treemodel"
)

// seedTrees creates one fresh tree per halo at the terminal snapshot, in
// input order, and attaches that halo as the tree's sole initial member.
// Halos at every other snapshot are linked backward onto these roots later
// by the linker.
func seedTrees(halos []*treemodel.Halo, terminal treemodel.Snapshot) ([]*treemodel.MergerTree, error) {
	var trees []*treemodel.MergerTree
	nextID := 0

	for _, h := range halos {
		if h.Snapshot != terminal {
			continue
		}
		tree := treemodel.NewMergerTree(nextID)
		nextID++
		h.Tree = tree
		tree.AddHalo(h)
		trees = append(trees, tree)
	}

	if len(trees) == 0 {
		return nil, errInvalidData(
			"no halo found at terminal snapshot %d (present snapshots: %v)",
			terminal, presentSnapshots(halos),
		)
	}

	return trees, nil
}

func presentSnapshots(halos []*treemodel.Halo) []treemodel.Snapshot {
	seen := make(map[treemodel.Snapshot]bool)
	for _, h := range halos {
		seen[h.Snapshot] = true
	}
	snaps := make([]treemodel.Snapshot, 0, len(seen))
	for s := range seen {
		snaps = append(snaps, s)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i] < snaps[j] })
	return snaps
}
