package pgxuow

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
)

// tx is the slice of pgx.Tx this package actually needs.
type tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Guard adapts a pgx transaction to the observe.UnitOfWork contract: the
// rollback observer marks it, the code that opened the transaction
// concludes it. Marking is idempotent and safe from the goroutine the
// wrapped operation runs on.
type Guard struct {
	mu           sync.Mutex
	tx           tx
	rollbackOnly bool
}

// Wrap builds a Guard over an already-begun pgx transaction. The caller
// keeps ownership of the transaction's lifecycle through Conclude.
func Wrap(t pgx.Tx) *Guard {
	return &Guard{tx: t}
}

// MarkRollbackOnly flags the transaction so Conclude rolls back instead of
// committing. Calling it more than once has no further effect.
func (g *Guard) MarkRollbackOnly() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rollbackOnly = true
}

// RollbackOnly reports whether the guard has been marked.
func (g *Guard) RollbackOnly() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rollbackOnly
}

// Conclude finishes the transaction: rollback if the guard was marked,
// commit otherwise.
func (g *Guard) Conclude(ctx context.Context) error {
	if g.RollbackOnly() {
		return g.tx.Rollback(ctx)
	}
	return g.tx.Commit(ctx)
}
