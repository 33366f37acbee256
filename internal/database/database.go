package database

import (
	"fmt"
	"net/url"
	"strings"

	"inkwell/config"
	"inkwell/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the store selected by DATABASE_URL with pooled connections.
func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// EnsureDatabase creates the target database when it does not exist yet,
// by connecting to the server's default "postgres" database. Non-postgres
// URLs are left alone.
func EnsureDatabase(cfg *config.DatabaseConfig, log zerolog.Logger) error {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		log.Debug().Str("scheme", u.Scheme).Msg("skipping database provisioning for non-postgres URL")
		return nil
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return fmt.Errorf("DATABASE_URL has no database name")
	}

	admin := *u
	admin.Path = "/postgres"
	adminDB, err := gorm.Open(postgres.Open(admin.String()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect to postgres server: %w", err)
	}
	sqlDB, err := adminDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var exists int
	if err := adminDB.Raw("SELECT 1 FROM pg_database WHERE datname = ?", dbName).Scan(&exists).Error; err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}
	if exists == 1 {
		log.Debug().Str("database", dbName).Msg("database already exists")
		return nil
	}

	log.Info().Str("database", dbName).Msg("database does not exist, creating it")
	if err := adminDB.Exec(fmt.Sprintf(`CREATE DATABASE %q`, dbName)).Error; err != nil {
		return fmt.Errorf("create database %s: %w", dbName, err)
	}
	return nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Rating{},
		&models.Configuration{},
		&models.Blog{},
		&models.Book{},
		&models.SocialLink{},
		&models.Site{},
	)
}
