// Package treebuild assembles a population of dark-matter halos identified
// at discrete simulation snapshots into a forest of merger trees, resolves
// central-subhalo identity along main-progenitor branches, enforces
// monotonic mass growth, and computes per-halo baryonic accretion.
//
// The pipeline is fixed: seed trees at a terminal snapshot, link halos
// backward across snapshots, verify every halo ended up owned by exactly
// one tree, optionally enforce mass growth, promote central subhalos, and
// finally compute accretion. Any stage failing an invariant aborts the
// whole build; no partial forest is ever returned.
package treebuild
