package treebuild

import (
	"github.com/galform/mergertree/pkg/treemodel"
	"github.com/galform/mergertree/pkg/utils"
)

// newHalo builds a bare halo with no subhalos attached.
func newHalo(id, snap int64, mvir, vvir float64) *treemodel.Halo {
	return &treemodel.Halo{
		ID:       treemodel.HaloID(id),
		Snapshot: treemodel.Snapshot(snap),
		Mvir:     mvir,
		Vvir:     vvir,
	}
}

// newSub builds a subhalo with a nominal descendant reference and attaches
// it to host's satellite list, mirroring how the ingest loader populates
// halos before linking runs.
func newSub(id int64, host *treemodel.Halo, mvir, vvir float64, descHaloID, descID int64, hasDescendant bool) *treemodel.Subhalo {
	sub := &treemodel.Subhalo{
		ID:               treemodel.SubhaloID(id),
		Snapshot:         host.Snapshot,
		Host:             host,
		Mvir:             mvir,
		Vvir:             vvir,
		HasDescendant:    hasDescendant,
		DescendantHaloID: treemodel.HaloID(descHaloID),
		DescendantID:     treemodel.SubhaloID(descID),
	}
	host.SatelliteSubhalos = append(host.SatelliteSubhalos, sub)
	return sub
}

// captureLogger records every Warn call for assertions, alongside the
// standard Logger behavior.
type captureLogger struct {
	utils.Logger
	warnings []string
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{Logger: &utils.NullLogger{}}
}

func (c *captureLogger) Warn(msg string, args ...interface{}) {
	c.warnings = append(c.warnings, msg)
	c.Logger.Warn(msg, args...)
}
