package treebuild

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/galform/mergertree/pkg/parallel"
	"github.com/galform/mergertree/pkg/treemodel"
	"github.com/galform/mergertree/pkg/utils"
)

const tracerName = "github.com/galform/mergertree/internal/treebuild"

// Options configures a single Build call beyond what SimParams/ExecParams
// already expose. ThreadCount is the single concurrency knob: the
// per-stage worker pools are all sized from it.
type Options struct {
	ThreadCount int
}

// BuildSummary reports aggregate counts from a completed build, recorded
// by the audit log and surfaced to callers for observability.
type BuildSummary struct {
	TreeCount       int
	HaloCount       int
	SubhaloCount    int
	TerminalHalos   int
	PrunedHaloCount int
	WarningCount    int
	MinSnapshot     treemodel.Snapshot
	MaxSnapshot     treemodel.Snapshot
	MassGrowthRun   bool
	Duration        time.Duration
}

// Build runs the fixed merger-tree construction pipeline: seed, link,
// verify, (optionally) enforce mass growth, define central subhalos,
// accrete. Any stage failing an invariant aborts the whole build; no
// partial forest is returned.
func Build(
	ctx context.Context,
	halos []*treemodel.Halo,
	simParams treemodel.SimParams,
	execParams treemodel.ExecParams,
	gasCooling treemodel.GasCoolingParams,
	cosmology treemodel.CosmologySource,
	allBaryons *treemodel.AllBaryons,
	logger utils.Logger,
	opts Options,
) ([]*treemodel.MergerTree, *BuildSummary, error) {
	start := time.Now()
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "mergertree.build")
	defer span.End()

	timer := utils.NewTimer("mergertree.build", utils.WithLogger(logger))
	defer timer.PrintSummary()

	pool := parallel.DefaultPoolConfig()
	if opts.ThreadCount > 0 {
		pool = pool.WithWorkers(opts.ThreadCount)
	}

	wc := newWarnCounter(logger)

	outputSnapshots := execParams.OutputSnapshots()
	if len(outputSnapshots) == 0 {
		return nil, nil, errInvalidData("exec_params.output_snapshots must name at least the terminal snapshot")
	}
	terminal := outputSnapshots[0]

	trees, err := withPhase(ctx, tracer, timer, "seed", func(ctx context.Context) ([]*treemodel.MergerTree, error) {
		return seedTrees(halos, terminal)
	})
	if err != nil {
		return nil, nil, err
	}

	if _, err := withPhase(ctx, tracer, timer, "link", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, linkHalos(halos, linkParams{
			SkipMissingDescendants:   execParams.SkipMissingDescendants(),
			WarnOnMissingDescendants: execParams.WarnOnMissingDescendants(),
		}, wc)
	}); err != nil {
		return nil, nil, err
	}

	if _, err := withPhase(ctx, tracer, timer, "verify", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, verifySelfContainment(ctx, trees, pool)
	}); err != nil {
		return nil, nil, err
	}

	if execParams.EnsureMassGrowth() {
		if _, err := withPhase(ctx, tracer, timer, "grow", func(ctx context.Context) (struct{}, error) {
			return struct{}{}, enforceMassGrowth(ctx, trees, pool)
		}); err != nil {
			return nil, nil, err
		}
	}

	if _, err := withPhase(ctx, tracer, timer, "centralize", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, defineCentralSubhalos(ctx, trees, pool, wc)
	}); err != nil {
		return nil, nil, err
	}

	allHalos := collectAllHalos(trees)
	if _, err := withPhase(ctx, tracer, timer, "accrete", func(ctx context.Context) (struct{}, error) {
		fb := cosmology.UniversalBaryonFraction()
		if err := computeAccretionPhaseA(ctx, allHalos, fb, pool); err != nil {
			return struct{}{}, err
		}
		snapshots := inclusiveSnapshotRange(simParams.MinSnapshot(), simParams.MaxSnapshot())
		allBaryons.ZeroFill(snapshots)
		computeAccretionPhaseB(ctx, allHalos, allBaryons, snapshots, pool)
		return struct{}{}, nil
	}); err != nil {
		return nil, nil, err
	}

	subhaloCount := 0
	for _, h := range allHalos {
		subhaloCount += len(h.AllSubhalos())
	}

	summary := &BuildSummary{
		TreeCount:       len(trees),
		HaloCount:       len(allHalos),
		SubhaloCount:    subhaloCount,
		TerminalHalos:   len(trees),
		PrunedHaloCount: len(halos) - len(allHalos),
		WarningCount:    wc.Count(),
		MinSnapshot:     simParams.MinSnapshot(),
		MaxSnapshot:     simParams.MaxSnapshot(),
		MassGrowthRun:   execParams.EnsureMassGrowth(),
		Duration:        time.Since(start),
	}

	return trees, summary, nil
}

// withPhase wraps fn in a child span named "mergertree.<name>" and a timer
// phase of the same name, recording an error status on the span if fn
// fails.
func withPhase[R any](ctx context.Context, tracer trace.Tracer, timer *utils.Timer, name string, fn func(context.Context) (R, error)) (R, error) {
	ctx, span := tracer.Start(ctx, "mergertree."+name)
	defer span.End()

	pt := timer.Start(name)
	defer pt.Stop()

	result, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

// inclusiveSnapshotRange returns every snapshot from min to max, ascending.
func inclusiveSnapshotRange(min, max treemodel.Snapshot) []treemodel.Snapshot {
	if max < min {
		return nil
	}
	snaps := make([]treemodel.Snapshot, 0, max-min+1)
	for s := min; s <= max; s++ {
		snaps = append(snaps, s)
	}
	return snaps
}
