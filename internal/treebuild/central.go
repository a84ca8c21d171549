package treebuild

import (
	"context"

	"github.com/galform/mergertree/pkg/parallel"
	"github.com/galform/mergertree/pkg/treemodel"
	"github.com/galform/mergertree/pkg/utils"
)

// defineCentralSubhalos runs both central-subhalo definer passes over every
// tree: promotion along main-progenitor branches, then validation that
// exactly one central subhalo survives per halo. Both passes are
// parallelizable across trees; within a tree, Pass 1 must walk snapshots
// descending because it assumes a halo's descendant has already been
// promoted before its progenitors are visited.
func defineCentralSubhalos(ctx context.Context, trees []*treemodel.MergerTree, pool parallel.PoolConfig, logger utils.Logger) error {
	_, err := parallel.ForEach(ctx, trees, pool, func(_ context.Context, tree *treemodel.MergerTree) error {
		return promoteCentralSubhalos(tree, logger)
	})
	if err != nil {
		return err
	}

	_, err = parallel.ForEach(ctx, trees, pool, func(_ context.Context, tree *treemodel.MergerTree) error {
		return validateCentralSubhalos(tree)
	})
	return err
}

// promoteCentralSubhalos is Pass 1 for a single tree.
func promoteCentralSubhalos(tree *treemodel.MergerTree, logger utils.Logger) error {
	snaps := tree.Snapshots()
	for i := len(snaps) - 1; i >= 0; i-- {
		snap := snaps[i]
		for _, h := range tree.HalosBySnapshot[snap] {
			if h.CentralSubhalo != nil {
				continue
			}
			first := firstSubhalo(h)
			if first == nil {
				continue
			}
			if err := defineCentralSubhalo(h, first); err != nil {
				return err
			}
			if err := walkMainProgenitorBranch(first, logger); err != nil {
				return err
			}
		}
	}
	return nil
}

// firstSubhalo returns the first listed subhalo of a halo that has not yet
// been promoted, preferring the existing satellite order.
func firstSubhalo(h *treemodel.Halo) *treemodel.Subhalo {
	if len(h.SatelliteSubhalos) == 0 {
		return nil
	}
	return h.SatelliteSubhalos[0]
}

// walkMainProgenitorBranch follows sub's ascendants backward, promoting the
// main progenitor of each ascendant halo to central, until the branch runs
// out of ascendants or reaches a halo whose central subhalo is already
// assigned.
func walkMainProgenitorBranch(sub *treemodel.Subhalo, logger utils.Logger) error {
	current := sub
	for {
		if len(current.Ascendants) == 0 {
			return nil
		}

		mainProg := findMainProgenitor(current, logger)
		ascHalo := mainProg.Host

		if ascHalo.CentralSubhalo != nil {
			return nil
		}

		if err := defineCentralSubhalo(ascHalo, mainProg); err != nil {
			return err
		}

		for _, asc := range current.Ascendants {
			if asc != mainProg {
				asc.LastSnapshotIdentified = asc.Snapshot
			}
		}

		current = mainProg
	}
}

// findMainProgenitor returns the ascendant flagged as main progenitor, or
// auto-selects the most massive ascendant (ties broken by iteration order)
// and flags it, warning that the flag was missing from the input.
func findMainProgenitor(sub *treemodel.Subhalo, logger utils.Logger) *treemodel.Subhalo {
	for _, asc := range sub.Ascendants {
		if asc.MainProgenitor {
			return asc
		}
	}

	best := sub.Ascendants[0]
	for _, asc := range sub.Ascendants[1:] {
		if asc.Mvir > best.Mvir {
			best = asc
		}
	}
	best.MainProgenitor = true
	logger.Warn("subhalo %d: no ascendant flagged as main progenitor, auto-selected %d by mass", sub.ID, best.ID)
	return best
}

// defineCentralSubhalo promotes sub to central of halo, copying its
// kinematic state onto the halo per the build's central-subhalo contract.
func defineCentralSubhalo(halo *treemodel.Halo, sub *treemodel.Subhalo) error {
	if !halo.RemoveSatellite(sub) {
		return errInvalidData("subhalo %d not found in halo %d's satellite list during central promotion", sub.ID, halo.ID)
	}

	halo.CentralSubhalo = sub
	halo.Position = sub.Position
	halo.Velocity = sub.Velocity
	halo.Concentration = sub.Concentration
	halo.Lambda = sub.Lambda
	if halo.Vvir < sub.Vvir {
		halo.Vvir = sub.Vvir
	}
	sub.Type = treemodel.SubhaloCentral
	for _, s := range halo.SatelliteSubhalos {
		s.Type = treemodel.SubhaloSatellite
	}

	return nil
}

// validateCentralSubhalos is Pass 2 for a single tree: every halo at every
// snapshot the tree owns must end up with exactly one central subhalo.
func validateCentralSubhalos(tree *treemodel.MergerTree) error {
	for _, snap := range tree.Snapshots() {
		for _, h := range tree.HalosBySnapshot[snap] {
			count := h.CentralCount()
			if count != 1 {
				return errInvalidArgument("halo %d at snapshot %d has %d central subhalos, expected exactly 1", h.ID, snap, count)
			}
		}
	}
	return nil
}
