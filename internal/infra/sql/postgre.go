package sql

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	passwordEnv  = "HUBBLE_WORKSPACE_POSTGRES_PASSWORD"
	maxRetries   = 10
	retryDelay   = 5 * time.Second
	QueryTimeout = 5 * time.Second
)

func NewPostgresORM(dsn string) (*DB, error) {
	if pass, ok := os.LookupEnv(passwordEnv); ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	var lastErr error
	for try := range maxRetries {
		gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err == nil {
			return &DB{
				DB:                   gormDB,
				autoMigrationEnabled: true,
				timeout:              QueryTimeout,
				system:               "postgresql",
			}, nil
		}

		lastErr = err
		slog.Warn("connecting to postgres", slog.Int("try", try+1), slog.String("error", err.Error()))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("connecting to postgres after %d retries: %w", maxRetries, lastErr)
}
