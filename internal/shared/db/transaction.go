// Package db provides database utilities including transaction management.
package db

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "campusvoice/internal/shared/errors"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// hooksKey carries the after-commit callbacks of the running attempt.
type hooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func(ctx context.Context)
}

func (h *commitHooks) add(fn func(ctx context.Context)) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *commitHooks) run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn(ctx)
	}
}

const defaultMaxRetries = 3

// TransactionManager manages database transactions.
type TransactionManager struct {
	db         *gorm.DB
	maxRetries uint64
}

// Option configures a TransactionManager.
type Option func(*TransactionManager)

// WithMaxRetries bounds how many times a transaction that failed on a
// transient storage error is replayed. Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(tm *TransactionManager) {
		if n < 0 {
			n = 0
		}
		tm.maxRetries = uint64(n)
	}
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB, opts ...Option) *TransactionManager {
	tm := &TransactionManager{db: db, maxRetries: defaultMaxRetries}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// RunInTransaction executes fn within a database transaction. The whole
// transaction is replayed with exponential backoff when it fails on a
// transient storage error; domain errors abort immediately.
//
// A call nested inside another RunInTransaction joins the outer transaction.
// Callbacks registered with AfterCommit run once the outermost transaction
// has committed.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	var committed *commitHooks
	op := func() error {
		// each attempt collects its own hooks; a rolled back attempt's are dropped
		hooks := &commitHooks{}
		err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			txCtx := context.WithValue(ctx, txKey{}, tx)
			return fn(context.WithValue(txCtx, hooksKey{}, hooks))
		})
		if err == nil {
			committed = hooks
			return nil
		}
		if !apperrors.IsTransientError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var err error
	if tm.maxRetries == 0 {
		err = op()
	} else {
		err = backoff.Retry(op, backoff.WithContext(tm.newBackOff(), ctx))
	}
	if err != nil {
		return err
	}
	committed.run(ctx)
	return nil
}

// AfterCommit defers fn until the transaction carried by ctx commits. It is
// never called for an attempt that rolls back. Outside a transaction fn runs
// immediately.
func (tm *TransactionManager) AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	AfterCommit(ctx, fn)
}

// AfterCommit is the standalone form of TransactionManager.AfterCommit.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if hooks, ok := ctx.Value(hooksKey{}).(*commitHooks); ok {
		hooks.add(fn)
		return
	}
	fn(ctx)
}

func (tm *TransactionManager) newBackOff() backoff.BackOff {
	// BackOff implementations are stateful; build one per call
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 20 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 5 * time.Second
	return backoff.WithMaxRetries(bo, tm.maxRetries)
}

// GetTx returns the transaction from context if available, otherwise returns the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}

// GetTxFromContext returns the transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// InTransaction reports whether ctx carries an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
// SQLite has no row locks and serializes writers on its own, so the clause
// is skipped there.
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
			return db
		}
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
