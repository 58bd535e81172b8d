// Package repomanager provides the RepositoryManager implementations:
// PostgreSQL (with goose migrations) and an in-memory store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/server/migrations"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/presskits"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

// PressKits returns a presskits.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) PressKits(db dbx.DBTX) presskits.Repository {
	return presskits.NewPostgresRepository(db)
}

// Conn returns the connection pool.
func (m *PostgresRepositoryManager) Conn() dbx.DBTX {
	return m.db
}

// WithTx runs fn inside a read-committed transaction on the pool.
func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, m.db, nil, fn)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{db: db}, nil
}
