package sql

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMemoryORM opens a private in-memory sqlite database. Each call gets its
// own database, connections of the same ORM share it.
func NewMemoryORM() (*DB, error) {
	return NewSQLiteORM(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

func NewSQLiteORM(dsn string) (*DB, error) {
	config := gormConfig()
	config.Logger = logger.Default.LogMode(logger.Silent)

	gormDB, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true, system: "sqlite"}, nil
}
