//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplyMigrationsGoose — накатывает встроенные миграции на свежую БД контейнера.
func ApplyMigrationsGoose(dsn string) error {
	if err := postgres.Migrate(dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// TruncateAll — очищает таблицы между тестами.
func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE TABLE orders, products`)
	return err
}
