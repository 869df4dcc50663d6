package health

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseChecker reports readiness of the tracking database.
type DatabaseChecker struct {
	pool *pgxpool.Pool
}

// NewDatabaseChecker wraps a connection pool as a readiness check.
func NewDatabaseChecker(pool *pgxpool.Pool) *DatabaseChecker {
	return &DatabaseChecker{pool: pool}
}

func (c *DatabaseChecker) Name() string { return "database" }

func (c *DatabaseChecker) Check(ctx context.Context) error {
	return c.pool.Ping(ctx)
}
