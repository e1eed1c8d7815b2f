package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/paths"
	"github.com/renato0307/keycap/internal/ports"
)

// SQLiteRepository implements ports.BindingStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.BindingStore = (*SQLiteRepository)(nil)

// gormLogger routes GORM logs to the keycap logger
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

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("KEYCAP_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (or creates) the shortcuts database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

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

	// WAL lets the listener daemon read while the editor writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ShortcutModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate shortcuts schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened shortcuts database", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetBinding implements BindingReader.GetBinding
func (r *SQLiteRepository) GetBinding(ctx context.Context, slot domain.SlotName) (domain.Binding, bool, error) {
	var model ShortcutModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("slot_name = ?", string(slot)).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read shortcut %s: %w", slot, err)
	}

	_, binding := shortcutModelToDomain(model)
	return binding, true, nil
}

// SetBinding implements BindingWriter.SetBinding.
// The binding is normalized before it is written; the stored form is returned.
func (r *SQLiteRepository) SetBinding(ctx context.Context, slot domain.SlotName, binding domain.Binding) (domain.Binding, error) {
	canonical, err := domain.ParseBinding(string(binding))
	if err != nil {
		return "", err
	}

	model := domainToShortcutModel(slot, canonical)
	err = withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"binding", "updated_at"}),
		}).Create(&model).Error
	}, 5)
	if err != nil {
		return "", fmt.Errorf("failed to save shortcut %s: %w", slot, err)
	}

	logging.Logger.Debug("Stored shortcut", "slot", slot, "binding", canonical)
	return canonical, nil
}

// ListBindings returns every stored binding keyed by slot
func (r *SQLiteRepository) ListBindings(ctx context.Context) (map[domain.SlotName]domain.Binding, error) {
	var models []ShortcutModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("slot_name").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcuts: %w", err)
	}

	result := make(map[domain.SlotName]domain.Binding, len(models))
	for _, m := range models {
		slot, binding := shortcutModelToDomain(m)
		result[slot] = binding
	}
	return result, nil
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
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
