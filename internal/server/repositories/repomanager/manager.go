package repomanager

import (
	"context"

	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/presskits"
)

// RepositoryManager vends repositories bound to either the shared connection
// (Conn) or a transaction handle passed to the WithTx callback.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() dbx.DBTX
	WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
	Accounts(db dbx.DBTX) accounts.Repository
	PressKits(db dbx.DBTX) presskits.Repository
}
