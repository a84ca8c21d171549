package treemodel

// SimParams exposes the simulation-wide snapshot range the build runs over.
type SimParams interface {
	MinSnapshot() Snapshot
	MaxSnapshot() Snapshot
}

// ExecParams exposes the execution-time switches that govern linking and
// mass-growth enforcement.
type ExecParams interface {
	// OutputSnapshots is ordered; its first element is the terminal
	// snapshot the tree seeder starts from.
	OutputSnapshots() []Snapshot
	EnsureMassGrowth() bool
	SkipMissingDescendants() bool
	WarnOnMissingDescendants() bool
}

// GasCoolingParams is reserved for accretion clamping. Only
// MaxFractionalAccretedMass is defined, and it is intentionally unused by
// the accretion calculator; the clamp itself is not yet wired in.
type GasCoolingParams interface {
	MaxFractionalAccretedMass() float64
}

// CosmologySource supplies the scalar universal baryon fraction used by the
// accretion calculator. The full cosmology computation is an external
// collaborator; this is the narrow slice the core depends on.
type CosmologySource interface {
	UniversalBaryonFraction() float64
}

// BasicSimParams is a plain struct implementation of SimParams.
type BasicSimParams struct {
	Min Snapshot
	Max Snapshot
}

func (p BasicSimParams) MinSnapshot() Snapshot { return p.Min }
func (p BasicSimParams) MaxSnapshot() Snapshot { return p.Max }

// BasicExecParams is a plain struct implementation of ExecParams.
type BasicExecParams struct {
	Snapshots                  []Snapshot
	MassGrowthEnabled          bool
	SkipMissingDescendantsFlag bool
	WarnOnMissingFlag          bool
}

func (p BasicExecParams) OutputSnapshots() []Snapshot    { return p.Snapshots }
func (p BasicExecParams) EnsureMassGrowth() bool         { return p.MassGrowthEnabled }
func (p BasicExecParams) SkipMissingDescendants() bool   { return p.SkipMissingDescendantsFlag }
func (p BasicExecParams) WarnOnMissingDescendants() bool { return p.WarnOnMissingFlag }

// BasicGasCoolingParams is a plain struct implementation of GasCoolingParams.
type BasicGasCoolingParams struct {
	MaxFractionalAccreted float64
}

func (p BasicGasCoolingParams) MaxFractionalAccretedMass() float64 { return p.MaxFractionalAccreted }
