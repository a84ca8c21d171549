package ingest

import (
	"fmt"

	apperrors "github.com/galform/mergertree/pkg/errors"
	"github.com/galform/mergertree/pkg/treemodel"
)

// SnapshotGroupName is the naming convention the loader expects under the
// root group: one subgroup per snapshot, zero-padded to three digits.
func SnapshotGroupName(snap treemodel.Snapshot) string {
	return fmt.Sprintf("Snapshot_%03d", snap)
}

// LoadHalos reads one subgroup per snapshot in [min, max] from root and
// assembles the flat halo slice the build orchestrator consumes. Each
// snapshot subgroup is expected to carry parallel arrays: HaloID, HaloMvir,
// HaloVvir, SubhaloID, SubhaloHaloID (owning halo), SubhaloMvir, SubhaloVvir,
// SubhaloDescendantHaloID, SubhaloDescendantID, SubhaloHasDescendant,
// SubhaloMainProgenitor.
func LoadHalos(root Group, minSnapshot, maxSnapshot treemodel.Snapshot) ([]*treemodel.Halo, error) {
	var all []*treemodel.Halo

	for snap := minSnapshot; snap <= maxSnapshot; snap++ {
		groupName := SnapshotGroupName(snap)
		snapGroup, err := root.Group(groupName)
		if err != nil {
			continue
		}

		halos, err := loadSnapshotHalos(snapGroup, snap)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInvalidData, "loading snapshot "+groupName, err)
		}
		all = append(all, halos...)
	}

	return all, nil
}

func loadSnapshotHalos(g Group, snap treemodel.Snapshot) ([]*treemodel.Halo, error) {
	haloIDs, err := readInt64(g, "HaloID")
	if err != nil {
		return nil, err
	}
	haloMvir, err := readFloat64(g, "HaloMvir")
	if err != nil {
		return nil, err
	}
	haloVvir, err := readFloat64(g, "HaloVvir")
	if err != nil {
		return nil, err
	}
	if len(haloMvir) != len(haloIDs) || len(haloVvir) != len(haloIDs) {
		return nil, fmt.Errorf("halo array length mismatch at snapshot %d", snap)
	}

	halosByID := make(map[treemodel.HaloID]*treemodel.Halo, len(haloIDs))
	halos := make([]*treemodel.Halo, 0, len(haloIDs))
	for i, id := range haloIDs {
		h := &treemodel.Halo{
			ID:       treemodel.HaloID(id),
			Snapshot: snap,
			Mvir:     haloMvir[i],
			Vvir:     haloVvir[i],
		}
		halosByID[h.ID] = h
		halos = append(halos, h)
	}

	subIDs, err := readInt64(g, "SubhaloID")
	if err != nil {
		return halos, nil
	}
	subHaloIDs, err := readInt64(g, "SubhaloHaloID")
	if err != nil {
		return nil, err
	}
	subMvir, err := readFloat64(g, "SubhaloMvir")
	if err != nil {
		return nil, err
	}
	subVvir, err := readFloat64(g, "SubhaloVvir")
	if err != nil {
		return nil, err
	}
	subDescHaloIDs, err := readInt64(g, "SubhaloDescendantHaloID")
	if err != nil {
		return nil, err
	}
	subDescIDs, err := readInt64(g, "SubhaloDescendantID")
	if err != nil {
		return nil, err
	}
	subHasDescendant, err := readInt64(g, "SubhaloHasDescendant")
	if err != nil {
		return nil, err
	}
	subMainProgenitor, err := readInt64(g, "SubhaloMainProgenitor")
	if err != nil {
		return nil, err
	}

	n := len(subIDs)
	for _, arr := range [][]int64{subHaloIDs, subDescHaloIDs, subDescIDs, subHasDescendant, subMainProgenitor} {
		if len(arr) != n {
			return nil, fmt.Errorf("subhalo array length mismatch at snapshot %d", snap)
		}
	}
	if len(subMvir) != n || len(subVvir) != n {
		return nil, fmt.Errorf("subhalo array length mismatch at snapshot %d", snap)
	}

	for i := 0; i < n; i++ {
		host, ok := halosByID[treemodel.HaloID(subHaloIDs[i])]
		if !ok {
			return nil, fmt.Errorf("subhalo %d references unknown host halo %d", subIDs[i], subHaloIDs[i])
		}
		sub := &treemodel.Subhalo{
			ID:               treemodel.SubhaloID(subIDs[i]),
			Snapshot:         snap,
			Host:             host,
			Mvir:             subMvir[i],
			Vvir:             subVvir[i],
			HasDescendant:    subHasDescendant[i] != 0,
			MainProgenitor:   subMainProgenitor[i] != 0,
			DescendantHaloID: treemodel.HaloID(subDescHaloIDs[i]),
			DescendantID:     treemodel.SubhaloID(subDescIDs[i]),
		}
		host.SatelliteSubhalos = append(host.SatelliteSubhalos, sub)
	}

	return halos, nil
}

func readInt64(g Group, name string) ([]int64, error) {
	ds, err := g.Dataset(name)
	if err != nil {
		return nil, err
	}
	return ds.Int64()
}

func readFloat64(g Group, name string) ([]float64, error) {
	ds, err := g.Dataset(name)
	if err != nil {
		return nil, err
	}
	return ds.Float64()
}
