package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/galform/mergertree/internal/auditlog"
	"github.com/galform/mergertree/internal/cosmology"
	"github.com/galform/mergertree/internal/ingest"
	"github.com/galform/mergertree/internal/treebuild"
	"github.com/galform/mergertree/pkg/config"
	"github.com/galform/mergertree/pkg/telemetry"
	"github.com/galform/mergertree/pkg/treemodel"
)

var (
	configFile  string
	catalogFile string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build merger trees from a halo catalog",
	Long: `Loads configuration, reads the halo catalog named by --input, runs the
merger-tree construction pipeline, prints a summary, and (if a database is
configured) records an audit row for the run.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (defaults to ./config.yaml)")
	buildCmd.Flags().StringVarP(&catalogFile, "input", "i", "", "Path to the halo catalog JSON file (required)")
	buildCmd.MarkFlagRequired("input")
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	ctx := context.Background()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	shutdown, err := telemetry.Init(ctx)
	if err != nil {
		log.Warn("telemetry init failed, continuing without tracing: %v", err)
	} else {
		defer shutdown(ctx)
	}

	log.Info("=== Merger Tree Builder ===")
	log.Info("Catalog:        %s", catalogFile)
	log.Info("Snapshot range: %d..%d", cfg.SimParams.MinSnapshot, cfg.SimParams.MaxSnapshot)
	log.Info("")

	root, err := ingest.LoadJSONGroup(catalogFile)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	minSnap := treemodel.Snapshot(cfg.SimParams.MinSnapshot)
	maxSnap := treemodel.Snapshot(cfg.SimParams.MaxSnapshot)

	halos, err := ingest.LoadHalos(root, minSnap, maxSnap)
	if err != nil {
		return fmt.Errorf("failed to load halo catalog: %w", err)
	}
	log.Info("Loaded %d halos across the configured snapshot range", len(halos))

	outputSnapshots := make([]treemodel.Snapshot, len(cfg.ExecParams.OutputSnapshots))
	for i, s := range cfg.ExecParams.OutputSnapshots {
		outputSnapshots[i] = treemodel.Snapshot(s)
	}
	if len(outputSnapshots) == 0 {
		outputSnapshots = []treemodel.Snapshot{maxSnap}
	}

	simParams := treemodel.BasicSimParams{Min: minSnap, Max: maxSnap}
	execParams := treemodel.BasicExecParams{
		Snapshots:                  outputSnapshots,
		MassGrowthEnabled:          cfg.ExecParams.EnsureMassGrowth,
		SkipMissingDescendantsFlag: cfg.ExecParams.SkipMissingDescendants,
		WarnOnMissingFlag:          cfg.ExecParams.WarnOnMissingDescendants,
	}
	gasCooling := treemodel.BasicGasCoolingParams{MaxFractionalAccreted: cfg.GasCooling.MaxFractionalAccretedMass}
	allBaryons := treemodel.NewAllBaryons(nil)

	startedAt := time.Now()
	trees, summary, buildErr := treebuild.Build(
		ctx,
		halos,
		simParams,
		execParams,
		gasCooling,
		cosmology.Planck2018(),
		allBaryons,
		log,
		treebuild.Options{ThreadCount: cfg.ExecParams.ThreadCount},
	)

	store, storeErr := openAuditStore(cfg)
	if storeErr != nil {
		log.Warn("audit log unavailable: %v", storeErr)
	}

	if buildErr != nil {
		log.Error("build failed: %v", buildErr)
		if store != nil {
			run := auditlog.FromFailure(cfg.SimParams.MinSnapshot, cfg.SimParams.MaxSnapshot, buildErr, startedAt)
			if err := store.Record(ctx, run); err != nil {
				log.Warn("failed to record audit row: %v", err)
			}
			store.Close()
		}
		return buildErr
	}

	log.Info("")
	log.Info("=== Build Summary ===")
	log.Info("Trees:         %d", summary.TreeCount)
	log.Info("Halos:         %d", summary.HaloCount)
	log.Info("Subhalos:      %d", summary.SubhaloCount)
	log.Info("Pruned halos:  %d", summary.PrunedHaloCount)
	log.Info("Warnings:      %d", summary.WarningCount)
	log.Info("Mass growth:   %v", summary.MassGrowthRun)
	log.Info("Duration:      %s", summary.Duration)

	if store != nil {
		run := auditlog.FromSummary(summary, startedAt)
		if err := store.Record(ctx, run); err != nil {
			log.Warn("failed to record audit row: %v", err)
		}
		store.Close()
	}

	_ = trees
	return nil
}

func openAuditStore(cfg *config.Config) (*auditlog.Store, error) {
	db, err := auditlog.NewGormDB(cfg.Database, cfg.Telemetry.Enabled)
	if err != nil {
		return nil, err
	}
	return auditlog.NewStore(db), nil
}
