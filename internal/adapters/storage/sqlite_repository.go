package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/logging"
	"github.com/lagreeflow/lagree/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.WorkoutLogRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.WorkoutLogRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the lagree logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("LAGREE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the workout log database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Several SSH sessions may write concurrently
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&WorkoutEventModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate workout_events schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Workout log opened", "path", dbPath)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific LAGREE_HOME path
func NewSQLiteRepositoryForPath(lagreeHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(lagreeHomePath, "lagree.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Append implements WorkoutLogWriter.Append. Events without an ID get a new uuid.
// All events are written in one transaction.
func (r *SQLiteRepository) Append(ctx context.Context, events []domain.WorkoutEvent) error {
	if len(events) == 0 {
		return nil
	}

	models := make([]WorkoutEventModel, len(events))
	for i, e := range events {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		models[i] = domainToWorkoutEventModel(e)
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("failed to append workout events: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// List implements WorkoutLogReader.List
func (r *SQLiteRepository) List(ctx context.Context, filter ports.WorkoutLogFilter) ([]domain.WorkoutEvent, error) {
	var models []WorkoutEventModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Model(&WorkoutEventModel{})
		if !filter.From.IsZero() {
			query = query.Where("occurred_at >= ?", filter.From.UTC())
		}
		if !filter.To.IsZero() {
			query = query.Where("occurred_at < ?", filter.To.UTC())
		}
		if filter.Kind != "" {
			query = query.Where("kind = ?", string(filter.Kind))
		}
		if filter.LessonID != 0 {
			query = query.Where("lesson_id = ?", filter.LessonID)
		}
		if filter.Limit > 0 {
			query = query.Order("occurred_at DESC").Order("rowid DESC").Limit(filter.Limit)
		} else {
			query = query.Order("occurred_at ASC").Order("rowid ASC")
		}
		return query.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout events: %w", err)
	}

	events := make([]domain.WorkoutEvent, len(models))
	for i, m := range models {
		events[i] = workoutEventModelToDomain(m)
	}
	return events, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
