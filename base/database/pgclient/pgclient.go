// Package pgclient wraps a pgx connection pool and applies the embedded
// schema migrations on connect.
package pgclient

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Client struct {
	pool *pgxpool.Pool
}

// MustConnectPgClient connects to postgres, applies migrations and panics on
// failure. Server startup depends on the store being reachable.
func MustConnectPgClient(uri string) *Client {
	client, err := ConnectPgClient(uri)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"err": err,
		}).Panic("failed to connect postgres")
	}
	return client
}

func ConnectPgClient(uri string) (*Client, error) {
	cfg, err := pgxpool.ParseConfig(uri)
	if err != nil {
		return nil, fmt.Errorf("pgclient: parse config: %w", err)
	}

	ctx, cancel := bCtx.WithTimeout(bCtx.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgclient: connect: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgclient: ping: %w", err)
	}

	client := &Client{pool: pool}
	if err := client.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return client, nil
}

func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Client) Ping(ctx bCtx.Ctx) error {
	return c.pool.Ping(ctx)
}

func (c *Client) Close() {
	c.pool.Close()
}

// migrate applies every embedded migration in filename order. Statements are
// written to be idempotent (CREATE ... IF NOT EXISTS).
func (c *Client) migrate(ctx bCtx.Ctx) error {
	entries, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("pgclient: list migrations: %w", err)
	}
	sort.Strings(entries)
	for _, name := range entries {
		stmt, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("pgclient: read migration %s: %w", name, err)
		}
		if _, err := c.pool.Exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("pgclient: apply migration %s: %w", name, err)
		}
		ctx.WithField("migration", name).Info("applied migration")
	}
	return nil
}
