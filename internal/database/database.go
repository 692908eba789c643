package database

import (
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "github.com/influenceos/agent-api/configs"
	"github.com/influenceos/agent-api/internal/models"
)

const localSQLitePath = "database.db"

// Connect opens the relational store and creates the schema if it is absent.
// Selection order: the local-dev flag wins over DATABASE_URL, which wins over
// the file-backed SQLite default.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch {
	case cfg.UseLocalDB:
		slog.Info("USE_LOCAL_DB set, using local SQLite database")
		dialector = sqlite.Open(localSQLitePath)
	case cfg.DatabaseURL != "":
		slog.Info("connecting to database from DATABASE_URL")
		if strings.Contains(cfg.DatabaseURL, "postgres") {
			dialector = postgres.Open(cfg.DatabaseURL)
		} else {
			dialector = sqlite.Open(cfg.DatabaseURL)
		}
	default:
		slog.Info("DATABASE_URL not set, defaulting to SQLite for local development")
		dialector = sqlite.Open(localSQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return nil, err
	}

	return db, nil
}
