package treebuild

import (
	"context"

	"github.com/galform/mergertree/pkg/parallel"
	"github.com/galform/mergertree/pkg/treemodel"
)

// computeAccretionPhaseA computes each halo's baryonic accretion from its
// dark-matter mass delta relative to its ascendants. Halos across all
// trees and snapshots are independent, so this flattens every halo into a
// single parallel pass.
func computeAccretionPhaseA(ctx context.Context, halos []*treemodel.Halo, baryonFraction float64, pool parallel.PoolConfig) error {
	_, err := parallel.ForEach(ctx, halos, pool, func(_ context.Context, h *treemodel.Halo) error {
		if h.CentralSubhalo == nil {
			return errInvalidArgument("halo %d has no central subhalo assigned before accretion", h.ID)
		}

		var ascendantMass float64
		for _, a := range h.Ascendants {
			ascendantMass += a.Mvir
		}

		accreted := (h.Mvir - ascendantMass) * baryonFraction
		if accreted < 0 {
			accreted = 0
		}
		h.CentralSubhalo.AccretedMass = accreted

		return nil
	})
	return err
}

// computeAccretionPhaseB aggregates every halo's central-subhalo accreted
// mass into a running, snapshot-ordered total. The per-snapshot sum is
// computed with a parallel reduction; the cumulative sum across snapshots
// is strictly sequential and ascending, per the running-total contract.
func computeAccretionPhaseB(ctx context.Context, halos []*treemodel.Halo, allBaryons *treemodel.AllBaryons, snapshots []treemodel.Snapshot, pool parallel.PoolConfig) {
	perSnapshot := parallel.ParallelAggregate(
		ctx,
		halos,
		pool,
		func(h *treemodel.Halo) (treemodel.Snapshot, float64) {
			if h.CentralSubhalo == nil {
				return h.Snapshot, 0
			}
			return h.Snapshot, h.CentralSubhalo.AccretedMass
		},
		func(existing, next float64) float64 { return existing + next },
	)

	var running float64
	for _, snap := range snapshots {
		running += perSnapshot[snap]
		allBaryons.Set(snap, running)
	}
}

// collectAllHalos flattens every tree's snapshot buckets into one slice.
func collectAllHalos(trees []*treemodel.MergerTree) []*treemodel.Halo {
	var all []*treemodel.Halo
	for _, tree := range trees {
		for _, snap := range tree.Snapshots() {
			all = append(all, tree.HalosBySnapshot[snap]...)
		}
	}
	return all
}
