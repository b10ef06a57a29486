package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"campustime.com/campustime/core/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

type DatabaseManager struct {
	db       *gorm.DB
	sqlDB    *sql.DB
	LogLevel LogLevel
}

// New creates the shared connection pool. dsn is a full MySQL DSN including
// the schema.
func New(dsn string, maxConnection int) (*DatabaseManager, error) {
	dm := &DatabaseManager{LogLevel: LogLevelWarn}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(dm.gormLogLevel()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	dm.db = db
	dm.sqlDB = sqlDB
	return dm, nil
}

func (dm *DatabaseManager) gormLogLevel() logger.LogLevel {
	switch dm.LogLevel {
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	case LogLevelInfo:
		return logger.Info
	default:
		return logger.Silent
	}
}

// DB returns a request-scoped handle.
func (dm *DatabaseManager) DB(ctx context.Context) *gorm.DB {
	return dm.db.WithContext(ctx)
}

func (dm *DatabaseManager) Exec(ctx context.Context, fn func(db *gorm.DB) error) error {
	return fn(dm.DB(ctx))
}

// Migrate creates or updates the application tables.
func (dm *DatabaseManager) Migrate() error {
	return dm.db.AutoMigrate(
		&models.User{},
		&models.TimesheetEntry{},
	)
}

func (dm *DatabaseManager) Close() error {
	return dm.sqlDB.Close()
}
