package config

import (
	"fmt"
	"strings"

	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB holds the database connection
type DB struct {
	SQL *gorm.DB
}

// InitDB opens the configured database and migrates the schema
func InitDB(cfg *Config) (*DB, error) {
	sqlDB, err := OpenDatabase(cfg.DBDriver, cfg.DatabaseURL, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	if err := Migrate(sqlDB); err != nil {
		return nil, fmt.Errorf("failed to auto migrate models: %w", err)
	}
	logging.Info().Str("driver", cfg.DBDriver).Msg("database auto-migrations completed")

	return &DB{SQL: sqlDB}, nil
}

// OpenDatabase opens a gorm connection for driver and verifies it with a ping.
func OpenDatabase(driver, dsn, logLevel string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	gormLogLevel := logger.Warn
	if strings.EqualFold(logLevel, "debug") {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	logging.Info().Str("driver", driver).Msg("successfully connected to database")
	return db, nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by default.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// Migrate creates or updates every table the service uses
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Media{},
		&models.Tweet{},
		&models.Like{},
		&models.Follow{},
	)
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.SQL == nil {
		return
	}
	sqlDB, err := db.SQL.DB()
	if err != nil {
		logging.Error().Err(err).Msg("error getting SQL DB from gorm")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logging.Error().Err(err).Msg("error closing database connection")
		return
	}
	logging.Info().Msg("database connection closed")
}
