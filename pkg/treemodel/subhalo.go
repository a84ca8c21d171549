package treemodel

// Subhalo is a gravitationally bound substructure within a halo. It carries
// the physical state that drives downstream galaxy-formation physics and the
// nominal descendant reference the linker resolves into a concrete edge.
type Subhalo struct {
	ID       SubhaloID
	Snapshot Snapshot
	Host     *Halo

	Mvir            float64
	Vvir            float64
	Position        Vec3
	Velocity        Vec3
	AngularMomentum Vec3
	Concentration   float64
	Lambda          float64

	HasDescendant  bool
	MainProgenitor bool
	IsInterpolated bool

	// DescendantHaloID/DescendantID are the nominal references supplied by
	// the ingest layer; the linker resolves them into Descendant below.
	DescendantHaloID HaloID
	DescendantID     SubhaloID

	Type SubhaloType

	LastSnapshotIdentified Snapshot

	Ascendants []*Subhalo
	Descendant *Subhalo

	AccretedMass float64
}

// IsCentral reports whether the central-subhalo definer has promoted this
// subhalo to CENTRAL.
func (s *Subhalo) IsCentral() bool {
	return s.Type == SubhaloCentral
}

// AddAscendant appends an ascendant subhalo. Unlike Halo.AddAscendant,
// Subhalo ascendant lists are not deduplicated. The link primitive calls
// this before it checks for a double descendant, so a rejected second link
// still leaves its entry here; that rejection aborts the build. Nothing
// else appends to Ascendants.
func (s *Subhalo) AddAscendant(a *Subhalo) {
	s.Ascendants = append(s.Ascendants, a)
}
