package treebuild

import (
	"context"

	"github.com/galform/mergertree/pkg/parallel"
	"github.com/galform/mergertree/pkg/treemodel"
)

// enforceMassGrowth walks each tree's snapshots ascending, overwriting a
// descendant's Mvir whenever a progenitor is heavier. Trees are disjoint
// and run in parallel; snapshots within a tree are strictly sequential
// because each step reads the mutation the previous step may have made.
func enforceMassGrowth(ctx context.Context, trees []*treemodel.MergerTree, pool parallel.PoolConfig) error {
	_, err := parallel.ForEach(ctx, trees, pool, func(_ context.Context, tree *treemodel.MergerTree) error {
		for _, snap := range tree.Snapshots() {
			for _, h := range tree.HalosBySnapshot[snap] {
				if h.Descendant != nil && h.Mvir > h.Descendant.Mvir {
					h.Descendant.Mvir = h.Mvir
				}
			}
		}
		return nil
	})
	return err
}
