package treebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/galform/mergertree/pkg/errors"
	"github.com/galform/mergertree/pkg/treemodel"
)

func TestDefineCentralSubhalo_PromotesAndCopiesState(t *testing.T) {
	h := newHalo(1, 0, 100, 5)
	sub := newSub(10, h, 90, 8, 0, 0, false)
	sub.Position = treemodel.Vec3{1, 2, 3}
	sub.Velocity = treemodel.Vec3{4, 5, 6}
	sub.Concentration = 7.5
	sub.Lambda = 0.03

	require.NoError(t, defineCentralSubhalo(h, sub))

	assert.Same(t, sub, h.CentralSubhalo)
	assert.Equal(t, sub.Position, h.Position)
	assert.Equal(t, sub.Velocity, h.Velocity)
	assert.Equal(t, sub.Concentration, h.Concentration)
	assert.Equal(t, sub.Lambda, h.Lambda)
	assert.Equal(t, 8.0, h.Vvir, "halo Vvir should adopt the subhalo's higher Vvir")
	assert.Equal(t, treemodel.SubhaloCentral, sub.Type)
	assert.Empty(t, h.SatelliteSubhalos)
}

func TestDefineCentralSubhalo_DoesNotLowerVvir(t *testing.T) {
	h := newHalo(1, 0, 100, 50)
	sub := newSub(10, h, 90, 8, 0, 0, false)

	require.NoError(t, defineCentralSubhalo(h, sub))
	assert.Equal(t, 50.0, h.Vvir)
}

func TestDefineCentralSubhalo_FailsIfNotInSatelliteList(t *testing.T) {
	h := newHalo(1, 0, 100, 5)
	sub := &treemodel.Subhalo{ID: 10, Host: h}

	err := defineCentralSubhalo(h, sub)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidData, apperrors.GetErrorCode(err))
}

func TestFindMainProgenitor_UsesExistingFlag(t *testing.T) {
	current := &treemodel.Subhalo{ID: 1}
	light := &treemodel.Subhalo{ID: 2, Mvir: 10, Host: newHalo(20, 0, 10, 1)}
	flagged := &treemodel.Subhalo{ID: 3, Mvir: 5, MainProgenitor: true, Host: newHalo(21, 0, 5, 1)}
	current.Ascendants = []*treemodel.Subhalo{light, flagged}

	logger := newCaptureLogger()
	got := findMainProgenitor(current, logger)
	assert.Same(t, flagged, got)
	assert.Empty(t, logger.warnings, "should not warn when a flag is already present")
}

func TestFindMainProgenitor_AutoSelectsByMassAndWarns(t *testing.T) {
	current := &treemodel.Subhalo{ID: 1}
	a := &treemodel.Subhalo{ID: 2, Mvir: 10, Host: newHalo(20, 0, 10, 1)}
	b := &treemodel.Subhalo{ID: 3, Mvir: 50, Host: newHalo(21, 0, 50, 1)}
	c := &treemodel.Subhalo{ID: 4, Mvir: 20, Host: newHalo(22, 0, 20, 1)}
	current.Ascendants = []*treemodel.Subhalo{a, b, c}

	logger := newCaptureLogger()
	got := findMainProgenitor(current, logger)
	assert.Same(t, b, got)
	assert.True(t, b.MainProgenitor)
	assert.NotEmpty(t, logger.warnings)
}

func TestFindMainProgenitor_TiesBreakByIterationOrder(t *testing.T) {
	current := &treemodel.Subhalo{ID: 1}
	a := &treemodel.Subhalo{ID: 2, Mvir: 10, Host: newHalo(20, 0, 10, 1)}
	b := &treemodel.Subhalo{ID: 3, Mvir: 10, Host: newHalo(21, 0, 10, 1)}
	current.Ascendants = []*treemodel.Subhalo{a, b}

	got := findMainProgenitor(current, newCaptureLogger())
	assert.Same(t, a, got, "first-encountered maximum should win ties")
}

func buildLinearTestTree(t *testing.T) (*treemodel.MergerTree, *treemodel.Halo, *treemodel.Halo, *treemodel.Halo) {
	t.Helper()
	tree := treemodel.NewMergerTree(0)

	h0 := newHalo(1, 0, 10, 1)
	h1 := newHalo(2, 1, 20, 2)
	h2 := newHalo(3, 2, 30, 3)
	h0.Tree, h1.Tree, h2.Tree = tree, tree, tree
	tree.AddHalo(h0)
	tree.AddHalo(h1)
	tree.AddHalo(h2)

	s0 := newSub(100, h0, 10, 1, 0, 0, false)
	s1 := newSub(200, h1, 20, 2, 0, 0, false)
	s2 := newSub(300, h2, 30, 3, 0, 0, false)

	s1.Ascendants = []*treemodel.Subhalo{s0}
	s0.Descendant = s1
	s2.Ascendants = []*treemodel.Subhalo{s1}
	s1.Descendant = s2
	h0.Ascendants = []*treemodel.Halo{}
	h1.Ascendants = []*treemodel.Halo{h0}
	h0.Descendant = h1
	h2.Ascendants = []*treemodel.Halo{h1}
	h1.Descendant = h2

	return tree, h0, h1, h2
}

func TestPromoteCentralSubhalos_LinearChain(t *testing.T) {
	tree, h0, h1, h2 := buildLinearTestTree(t)

	require.NoError(t, promoteCentralSubhalos(tree, newCaptureLogger()))

	assert.Empty(t, h0.SatelliteSubhalos, "h0's only subhalo should have moved to the central slot")
	assert.NotNil(t, h2.CentralSubhalo)
	assert.NotNil(t, h1.CentralSubhalo)
	assert.NotNil(t, h0.CentralSubhalo)
	assert.Equal(t, treemodel.SubhaloCentral, h0.CentralSubhalo.Type)
	assert.Equal(t, treemodel.SubhaloCentral, h1.CentralSubhalo.Type)
	assert.Equal(t, treemodel.SubhaloCentral, h2.CentralSubhalo.Type)
}

func TestPromoteCentralSubhalos_StopsAtAlreadyPromotedHalo(t *testing.T) {
	tree, h0, h1, _ := buildLinearTestTree(t)

	// Run Pass 1 twice; the second run finds every halo already promoted
	// and must neither error nor replace h0's central.
	require.NoError(t, promoteCentralSubhalos(tree, newCaptureLogger()))
	firstCentral := h0.CentralSubhalo
	require.NoError(t, promoteCentralSubhalos(tree, newCaptureLogger()))
	assert.Same(t, firstCentral, h0.CentralSubhalo)
	_ = h1
}

func TestValidateCentralSubhalos_DetectsZeroAndMultiple(t *testing.T) {
	tree := treemodel.NewMergerTree(0)
	h := newHalo(1, 0, 10, 1)
	tree.AddHalo(h)
	h.Tree = tree
	sub := newSub(10, h, 10, 1, 0, 0, false)
	_ = sub

	err := validateCentralSubhalos(tree)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.GetErrorCode(err))

	require.NoError(t, defineCentralSubhalo(h, sub))
	require.NoError(t, validateCentralSubhalos(tree))

	extra := &treemodel.Subhalo{ID: 11, Host: h, Type: treemodel.SubhaloCentral}
	h.SatelliteSubhalos = append(h.SatelliteSubhalos, extra)
	err = validateCentralSubhalos(tree)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.GetErrorCode(err))
}

func TestWalkMainProgenitorBranch_MarksSiblingsLastSnapshotIdentified(t *testing.T) {
	// sub has two ascendants: mainProg (flagged) and sibling (not flagged).
	// After the walk, sibling.LastSnapshotIdentified should be set to its
	// own snapshot, and mainProg's halo should be promoted to central.
	ascHalo := newHalo(2, 0, 50, 5)
	mainProg := newSub(20, ascHalo, 50, 5, 1, 10, true)
	mainProg.MainProgenitor = true

	siblingHalo := newHalo(3, 0, 10, 1)
	sibling := newSub(30, siblingHalo, 10, 1, 1, 10, true)
	sibling.Snapshot = 0

	sub := &treemodel.Subhalo{ID: 10, Snapshot: 1}
	sub.Ascendants = []*treemodel.Subhalo{mainProg, sibling}

	require.NoError(t, walkMainProgenitorBranch(sub, newCaptureLogger()))

	assert.Equal(t, treemodel.SubhaloCentral, mainProg.Type)
	assert.Same(t, mainProg, ascHalo.CentralSubhalo)
	assert.Equal(t, sibling.Snapshot, sibling.LastSnapshotIdentified)
}
