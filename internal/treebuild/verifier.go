package treebuild

import (
	"context"

	"github.com/galform/mergertree/pkg/parallel"
	"github.com/galform/mergertree/pkg/treemodel"
)

// verifySelfContainment confirms that every halo reachable from a tree's
// snapshot buckets actually points back at that same tree. Trees are
// disjoint subgraphs, so this runs one task per tree.
func verifySelfContainment(ctx context.Context, trees []*treemodel.MergerTree, pool parallel.PoolConfig) error {
	_, err := parallel.ForEach(ctx, trees, pool, func(_ context.Context, tree *treemodel.MergerTree) error {
		for _, snap := range tree.Snapshots() {
			for _, h := range tree.HalosBySnapshot[snap] {
				if h.Tree != tree {
					return errInvalidData("halo %d at snapshot %d is not self-contained in tree %d", h.ID, snap, tree.ID)
				}
			}
		}
		return nil
	})
	return err
}
