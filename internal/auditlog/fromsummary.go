package auditlog

import (
	"time"

	"github.com/google/uuid"

	"github.com/galform/mergertree/internal/treebuild"
)

// FromSummary builds the audit row for a successful build. Each row gets a
// fresh RunID so it can be correlated with the build's trace independently
// of the autoincrement primary key, which is only stable within one
// database.
func FromSummary(summary *treebuild.BuildSummary, startedAt time.Time) *BuildRun {
	endedAt := startedAt.Add(summary.Duration)
	return &BuildRun{
		RunID:           uuid.NewString(),
		MinSnapshot:     int32(summary.MinSnapshot),
		MaxSnapshot:     int32(summary.MaxSnapshot),
		TreeCount:       summary.TreeCount,
		HaloCount:       summary.HaloCount,
		SubhaloCount:    summary.SubhaloCount,
		PrunedHaloCount: summary.PrunedHaloCount,
		WarningCount:    summary.WarningCount,
		MassGrowthRun:   summary.MassGrowthRun,
		Succeeded:       true,
		DurationMs:      summary.Duration.Milliseconds(),
		StartedAt:       startedAt,
		EndedAt:         endedAt,
	}
}

// FromFailure builds the audit row for a build that aborted with err.
func FromFailure(minSnapshot, maxSnapshot int32, err error, startedAt time.Time) *BuildRun {
	endedAt := time.Now()
	return &BuildRun{
		RunID:         uuid.NewString(),
		MinSnapshot:   minSnapshot,
		MaxSnapshot:   maxSnapshot,
		Succeeded:     false,
		FailureReason: err.Error(),
		DurationMs:    endedAt.Sub(startedAt).Milliseconds(),
		StartedAt:     startedAt,
		EndedAt:       endedAt,
	}
}
