package auditlog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/galform/mergertree/pkg/config"
)

// NewGormDB opens a GORM connection for the audit store, dispatching on
// cfg.Type. When telemetryEnabled is set, the GORM tracing plugin records
// the store's queries as spans under whatever span the caller's context
// carries.
func NewGormDB(cfg config.DatabaseConfig, telemetryEnabled bool) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "sqlite":
		path := cfg.Database
		if path == "" {
			path = "mergertree_audit.db"
		}
		dialector = sqlite.Open(path)
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database,
		)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}

	if telemetryEnabled {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, fmt.Errorf("failed to enable audit telemetry: %w", err)
		}
	}

	if cfg.Type != "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		maxConns := cfg.MaxConns
		if maxConns <= 0 {
			maxConns = 10
		}
		sqlDB.SetMaxOpenConns(maxConns)
		sqlDB.SetMaxIdleConns(maxConns / 2)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&BuildRun{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit schema: %w", err)
	}

	return db, nil
}

// Store persists BuildRun rows.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an already-opened, already-migrated GORM connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Record inserts a BuildRun row.
func (s *Store) Record(ctx context.Context, run *BuildRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record build run: %w", err)
	}
	return nil
}

// Recent returns the most recent build runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*BuildRun, error) {
	var runs []*BuildRun
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query recent build runs: %w", err)
	}
	return runs, nil
}

// LastFailure returns the most recent failed build run, or nil if every
// recorded run succeeded.
func (s *Store) LastFailure(ctx context.Context) (*BuildRun, error) {
	var run BuildRun
	err := s.db.WithContext(ctx).Where("succeeded = ?", false).Order("id DESC").First(&run).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query last failed build run: %w", err)
	}
	return &run, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
