package store

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the store schema up to date using the embedded goose
// migrations. Only the Postgres backend needs this.
func Migrate() error {
	sqlDB, err := config.StoreGorm.DB()
	if err != nil {
		return fmt.Errorf("migrate: obtain sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: set dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
