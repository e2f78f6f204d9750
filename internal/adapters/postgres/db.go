package postgres

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Pool is the subset of *pgxpool.Pool the repositories run queries on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type DB struct {
	Pool Pool

	// pgx is set when DB owns a real pool; migrations need it.
	pgx *pgxpool.Pool
}

// New wraps an existing pool. The caller keeps ownership of it.
func New(pool Pool) *DB {
	return &DB{Pool: pool}
}

var errNoPool = errors.New("postgres: migrations need a connected pool")

func Connect(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{Pool: pool, pgx: pool}, nil
}

func (db *DB) Close() {
	if db.pgx != nil {
		db.pgx.Close()
	}
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
	if db.pgx == nil {
		return errNoPool
	}
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{zerolog.Ctx(ctx)})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	sqlDB := stdlib.OpenDBFromPool(db.pgx)
	defer sqlDB.Close()
	return goose.UpContext(ctx, sqlDB, "migrations")
}

type gooseLogger struct{ l *zerolog.Logger }

func (g gooseLogger) Printf(format string, v ...any) { g.l.Info().Msgf(format, v...) }
func (g gooseLogger) Fatalf(format string, v ...any) { g.l.Fatal().Msgf(format, v...) }
