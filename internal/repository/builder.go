package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feriascalendar/internal/domain"
	"feriascalendar/internal/repository/csvfile"
	"feriascalendar/internal/repository/postgres"
)

// Storage types accepted by NewEventStore.
const (
	StorageCSV      = "csv"
	StoragePostgres = "postgres"
)

const connectTimeout = 15 * time.Second

// Config selects and configures the event store backend.
type Config struct {
	StorageType string
	CSVPath     string
	DatabaseURL string
}

// NewEventStore builds the configured store. The returned close func releases its resources.
func NewEventStore(config Config, logger *slog.Logger) (domain.EventStore, func() error, error) {
	switch config.StorageType {
	case StorageCSV, "":
		logger.Info("using csv event store", "path", config.CSVPath)
		return csvfile.NewEventStore(config.CSVPath, logger), func() error { return nil }, nil
	case StoragePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		db, err := postgres.Open(ctx, config.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgres.RunMigrations(db, logger); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("using postgres event store")
		return postgres.NewEventRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", config.StorageType)
	}
}
