package db

import (
	"context"
	"database/sql"
	"embed"

	"emperror.dev/errors"
	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/steward-bot/steward/db/stats"

	// pgx driver for migrations
	_ "github.com/jackc/pgx/v4/stdlib"
)

// sq is a squirrel builder for postgres
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Querier is the query contract shared by the pool and transactions.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// DB is the bot's database.
type DB struct {
	Pool *pgxpool.Pool

	Sugar *zap.SugaredLogger
	Hub   *sentry.Hub

	// Stats is nil-safe and only set when metrics are enabled.
	Stats *stats.Client
}

// New connects to the database at the given URL, running any pending
// migrations first.
func New(url string, sugar *zap.SugaredLogger, hub *sentry.Hub) (*DB, error) {
	_, err := RunMigrations(url, sugar)
	if err != nil {
		return nil, errors.Wrap(err, "running migrations")
	}

	pool, err := pgxpool.Connect(context.Background(), url)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to postgres")
	}

	db := &DB{
		Pool:  pool,
		Sugar: sugar,
		Hub:   hub,
	}

	return db, nil
}

// Exec executes a query on the pool, counting it for metrics.
func (db *DB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	db.Stats.IncQuery()
	return db.Pool.Exec(ctx, sql, args...)
}

// QueryRow runs a single-row query on the pool, counting it for metrics.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	db.Stats.IncQuery()
	return db.Pool.QueryRow(ctx, sql, args...)
}

// Query runs a query on the pool, counting it for metrics.
func (db *DB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	db.Stats.IncQuery()
	return db.Pool.Query(ctx, sql, args...)
}

var _ Querier = (*DB)(nil)
var _ pgxscan.Querier = (*DB)(nil)

// Close closes the underlying pool.
func (db *DB) Close() {
	db.Pool.Close()
}

//go:embed migrations
var fs embed.FS

// RunMigrations applies all pending migrations in migrations/ and returns how
// many were applied. It opens its own short-lived connection, as everything
// else uses pgx's native driver.
func RunMigrations(url string, sugar *zap.SugaredLogger) (n int, err error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return 0, errors.Wrap(err, "opening database")
	}
	defer db.Close()

	err = db.Ping()
	if err != nil {
		return 0, errors.Wrap(err, "pinging database")
	}

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "migrations",
	}

	migrate.SetTable("migration_history")

	n, err = migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "running migrations")
	}

	if n != 0 {
		sugar.Infof("Performed %v migrations!", n)
	}
	return n, nil
}
