package db

import (
	"fmt"
	"time"

	"family_tasks/internal/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slogWriter routes gorm's logger into the application logger.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	logger.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}

// OpenSQLite opens (or creates) the SQLite database at path.
func OpenSQLite(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(slogWriter{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; an in-memory database also lives per connection
	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}
