package client

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/presskit/internal/client/migrations"
	"github.com/dmitrijs2005/presskit/internal/client/repositories/session"
	"github.com/dmitrijs2005/presskit/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SessionDBName is the SQLite file created inside the session directory.
const SessionDBName = "session.db"

type Repositories struct {
	Session session.Repository
	db      *sql.DB
}

func (r *Repositories) Close() error {
	return r.db.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the session database under dir.
func InitDatabase(ctx context.Context, dir string) (*Repositories, error) {
	path, err := filex.EnsureSubdDir(dir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(path, SessionDBName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{Session: session.NewSQLiteRepository(db), db: db}, nil
}
