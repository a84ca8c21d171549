package treebuild

import (
	"fmt"
	"sort"

	"github.com/galform/mergertree/pkg/treemodel"
	"github.com/galform/mergertree/pkg/utils"
)

// linkParams bundles the execution-time switches the linker consults for
// every unresolved descendant reference.
type linkParams struct {
	SkipMissingDescendants   bool
	WarnOnMissingDescendants bool
}

// linkHalos resolves every subhalo's nominal descendant reference into a
// concrete ascendant/descendant edge at both halo and subhalo granularity,
// and propagates tree membership backward from the already-seeded terminal
// snapshot. halos is the full input population; the terminal-snapshot
// subset has already been seeded into trees by seedTrees and is skipped
// here.
//
// The halo-by-id index is mutated as halos are pruned. A halo is processed
// exactly once regardless of later mutation of the index: pruning only
// ever removes a halo's own entry (visible to earlier-snapshot lookups
// still to come), never another halo already queued for processing at the
// same or a different snapshot.
func linkHalos(halos []*treemodel.Halo, params linkParams, logger utils.Logger) error {
	byID := make(map[treemodel.HaloID]*treemodel.Halo, len(halos))
	bySnapshot := make(map[treemodel.Snapshot][]*treemodel.Halo)
	for _, h := range halos {
		byID[h.ID] = h
		bySnapshot[h.Snapshot] = append(bySnapshot[h.Snapshot], h)
	}

	snaps := make([]treemodel.Snapshot, 0, len(bySnapshot))
	for s := range bySnapshot {
		snaps = append(snaps, s)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i] > snaps[j] })

	if len(snaps) == 0 {
		return nil
	}
	// The largest snapshot has already been seeded into trees directly;
	// it is never revisited by the linker.
	snaps = snaps[1:]

	for _, snap := range snaps {
		for _, h := range bySnapshot[snap] {
			if _, present := byID[h.ID]; !present {
				// linkHalo only removes the id of the halo it processes, so
				// this fires when an earlier input halo with the same id
				// has already been pruned.
				continue
			}
			if err := linkHalo(h, byID, params, logger); err != nil {
				return err
			}
		}
	}

	return nil
}

// linkHalo processes every subhalo of h, installing edges where a
// descendant resolves and pruning h from the id index if it never links.
func linkHalo(h *treemodel.Halo, byID map[treemodel.HaloID]*treemodel.Halo, params linkParams, logger utils.Logger) error {
	subs := append([]*treemodel.Subhalo(nil), h.SatelliteSubhalos...)
	linked := false

	for _, sub := range subs {
		if !sub.HasDescendant {
			h.RemoveSubhalo(sub)
			continue
		}

		descHalo, ok := byID[sub.DescendantHaloID]
		if !ok {
			// The halo this subhalo points to no longer exists (or never
			// did). Abandon the whole halo: its remaining subhalos, and
			// transitively its progenitor sub-DAG, become unreachable.
			delete(byID, h.ID)
			return nil
		}

		descSub := findSubhalo(descHalo, sub.DescendantID)
		if descSub == nil {
			if !params.SkipMissingDescendants {
				return errSubhaloNotFound(int64(sub.DescendantID),
					fmt.Sprintf("halo %d subhalo %d", h.ID, sub.ID))
			}
			if params.WarnOnMissingDescendants {
				logger.Warn("skipping subhalo %d (halo %d, snapshot %d): descendant subhalo %d not found in halo %d",
					sub.ID, h.ID, h.Snapshot, sub.DescendantID, sub.DescendantHaloID)
			}
			h.RemoveSubhalo(sub)
			continue
		}

		if descSub.Snapshot != sub.Snapshot+1 {
			return errInvalidData(
				"subhalo %d (snapshot %d) names descendant subhalo %d at non-adjacent snapshot %d",
				sub.ID, sub.Snapshot, descSub.ID, descSub.Snapshot,
			)
		}

		if err := link(sub, descSub, h, descHalo); err != nil {
			return err
		}
		linked = true
	}

	if !linked {
		delete(byID, h.ID)
	}

	return nil
}

// link installs the bidirectional ascendant/descendant edges for a
// resolved (parentSubhalo, descendantSubhalo) pair and propagates tree
// membership from the descendant halo backward onto the parent halo.
func link(parentSub, descSub *treemodel.Subhalo, parentHalo, descHalo *treemodel.Halo) error {
	descSub.AddAscendant(parentSub)

	if parentSub.Descendant != nil {
		return errInvalidData("subhalo %d already has a descendant (double descendant)", parentSub.ID)
	}
	parentSub.Descendant = descSub

	novel := descHalo.AddAscendant(parentHalo)

	if parentHalo.Descendant != nil && parentHalo.Descendant != descHalo {
		return errInvalidData("halo %d already linked to a different descendant halo", parentHalo.ID)
	}
	parentHalo.Descendant = descHalo

	if descHalo.Tree == nil {
		return errInvalidData("descendant halo %d has no merger tree assigned", descHalo.ID)
	}
	parentHalo.Tree = descHalo.Tree
	if novel {
		parentHalo.Tree.AddHalo(parentHalo)
	}

	return nil
}

// findSubhalo searches a halo's subhalos for the given id.
func findSubhalo(h *treemodel.Halo, id treemodel.SubhaloID) *treemodel.Subhalo {
	for _, s := range h.AllSubhalos() {
		if s.ID == id {
			return s
		}
	}
	return nil
}
