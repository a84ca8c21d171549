package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSONGroup_NestedTraversal(t *testing.T) {
	path := writeCatalog(t, `{
		"Snapshot_063": {
			"HaloID": [1, 2, 3],
			"BoxSize": 100.0
		}
	}`)

	root, err := LoadJSONGroup(path)
	require.NoError(t, err)

	ds, err := ResolveDataset(root, "Snapshot_063/HaloID")
	require.NoError(t, err)
	ids, err := ds.Int64()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	attr, err := ResolveAttribute(root, "Snapshot_063/BoxSize")
	require.NoError(t, err)
	boxSize, err := attr.Float64()
	require.NoError(t, err)
	assert.Equal(t, 100.0, boxSize)
}

func TestLoadJSONGroup_MissingDataset(t *testing.T) {
	path := writeCatalog(t, `{"Snapshot_063": {}}`)

	root, err := LoadJSONGroup(path)
	require.NoError(t, err)

	_, err = ResolveDataset(root, "Snapshot_063/HaloID")
	assert.Error(t, err)
}
