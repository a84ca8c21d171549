// Package auditlog records metadata about completed merger-tree builds. It
// stores only a summary row per run (snapshot range, counts, pass/fail) —
// the tree graph itself is never persisted here.
package auditlog

import "time"

// BuildRun represents the build_run table: one row per completed (or
// failed) Build call.
type BuildRun struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RunID           string    `gorm:"column:run_id;index"`
	MinSnapshot     int32     `gorm:"column:min_snapshot"`
	MaxSnapshot     int32     `gorm:"column:max_snapshot"`
	TreeCount       int       `gorm:"column:tree_count"`
	HaloCount       int       `gorm:"column:halo_count"`
	SubhaloCount    int       `gorm:"column:subhalo_count"`
	PrunedHaloCount int       `gorm:"column:pruned_halo_count"`
	WarningCount    int       `gorm:"column:warning_count"`
	MassGrowthRun   bool      `gorm:"column:mass_growth_run"`
	Succeeded       bool      `gorm:"column:succeeded"`
	FailureReason   string    `gorm:"column:failure_reason;type:text"`
	DurationMs      int64     `gorm:"column:duration_ms"`
	StartedAt       time.Time `gorm:"column:started_at"`
	EndedAt         time.Time `gorm:"column:ended_at"`
	CreateTime      time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName returns the table name for BuildRun.
func (BuildRun) TableName() string {
	return "build_run"
}
