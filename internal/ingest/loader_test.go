package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galform/mergertree/pkg/treemodel"
)

func datasetOf(name string, floats []float64, ints []int64) *MockDataset {
	ds := NewMockDataset(name)
	ds.On("Float64").Return(floats, nil).Maybe()
	ds.On("Int64").Return(ints, nil).Maybe()
	return ds
}

func TestLoadHalos_SingleSnapshot(t *testing.T) {
	root := &MockGroup{}
	snap63 := &MockGroup{}

	root.ExpectGroup("Snapshot_063", snap63, nil)
	root.ExpectGroup("Snapshot_064", nil, errors.New("no such group"))

	snap63.ExpectDataset("HaloID", datasetOf("HaloID", nil, []int64{1, 2}), nil)
	snap63.ExpectDataset("HaloMvir", datasetOf("HaloMvir", []float64{10, 20}, nil), nil)
	snap63.ExpectDataset("HaloVvir", datasetOf("HaloVvir", []float64{1, 2}, nil), nil)
	snap63.ExpectDataset("SubhaloID", datasetOf("SubhaloID", nil, []int64{100, 101}), nil)
	snap63.ExpectDataset("SubhaloHaloID", datasetOf("SubhaloHaloID", nil, []int64{1, 2}), nil)
	snap63.ExpectDataset("SubhaloMvir", datasetOf("SubhaloMvir", []float64{8, 18}, nil), nil)
	snap63.ExpectDataset("SubhaloVvir", datasetOf("SubhaloVvir", []float64{1, 2}, nil), nil)
	snap63.ExpectDataset("SubhaloDescendantHaloID", datasetOf("SubhaloDescendantHaloID", nil, []int64{0, 0}), nil)
	snap63.ExpectDataset("SubhaloDescendantID", datasetOf("SubhaloDescendantID", nil, []int64{0, 0}), nil)
	snap63.ExpectDataset("SubhaloHasDescendant", datasetOf("SubhaloHasDescendant", nil, []int64{0, 0}), nil)
	snap63.ExpectDataset("SubhaloMainProgenitor", datasetOf("SubhaloMainProgenitor", nil, []int64{0, 0}), nil)

	halos, err := LoadHalos(root, treemodel.Snapshot(63), treemodel.Snapshot(64))

	require.NoError(t, err)
	require.Len(t, halos, 2)
	assert.Equal(t, treemodel.HaloID(1), halos[0].ID)
	require.Len(t, halos[0].SatelliteSubhalos, 1)
	assert.Equal(t, treemodel.SubhaloID(100), halos[0].SatelliteSubhalos[0].ID)
	assert.Same(t, halos[0], halos[0].SatelliteSubhalos[0].Host)
}
