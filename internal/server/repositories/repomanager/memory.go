package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/presskit/internal/dbx"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/memory"
	"github.com/dmitrijs2005/presskit/internal/server/repositories/presskits"
)

// MemoryRepositoryManager serves repositories from a single in-process
// store. The DBTX arguments are ignored; WithTx serializes its callbacks so
// read-modify-write sequences do not interleave.
type MemoryRepositoryManager struct {
	store *memory.Store
	txMu  sync.Mutex
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Conn() dbx.DBTX { return nil }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}

func (m *MemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.store.Accounts()
}

func (m *MemoryRepositoryManager) PressKits(dbx.DBTX) presskits.Repository {
	return m.store.PressKits()
}
