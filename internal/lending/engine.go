package lending

import (
	"context"
	"time"
)

const (
	defaultTxTimeout   = 5 * time.Second
	defaultMaxAttempts = 3
)

// Engine owns the two lending transactions. Every availability flip and
// every loan lifecycle change in the system goes through it.
type Engine struct {
	store       Store
	txTimeout   time.Duration
	maxAttempts int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTxTimeout bounds each lending transaction. A timed-out transaction
// aborts; it never commits partially.
func WithTxTimeout(d time.Duration) Option {
	return func(e *Engine) { e.txTimeout = d }
}

// WithMaxAttempts sets how many times a transaction that lost a concurrent
// race is re-run before ErrConcurrencyConflict reaches the caller.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) { e.maxAttempts = n }
}

// NewEngine creates a lending engine on top of a transactional store.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		txTimeout:   defaultTxTimeout,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ Service = (*Engine)(nil)

// Borrow lends a book to a borrower and returns the new loan id.
//
// The quota check, the availability check, the loan insert and the
// availability flip run under one transaction with the borrower and book
// rows locked, so of two racing borrows for the same book exactly one
// succeeds and the other observes the book as unavailable. A borrower at
// their quota boundary is serialized the same way.
func (e *Engine) Borrow(ctx context.Context, bookID, borrowerID int64) (int64, error) {
	var loanID int64
	err := retryOnConflict(ctx, e.maxAttempts, func(ctx context.Context) error {
		txCtx, cancel := context.WithTimeout(ctx, e.txTimeout)
		defer cancel()
		return e.store.WithTx(txCtx, func(tx Tx) error {
			quota, err := tx.BorrowerQuota(txCtx, borrowerID)
			if err != nil {
				return err
			}
			open, err := tx.OpenLoanCount(txCtx, borrowerID)
			if err != nil {
				return err
			}
			if open >= quota {
				return ErrQuotaExceeded
			}
			available, err := tx.BookAvailability(txCtx, bookID)
			if err != nil {
				return err
			}
			if !available {
				return ErrBookUnavailable
			}
			loanID, err = tx.InsertLoan(txCtx, bookID, borrowerID)
			if err != nil {
				return err
			}
			return tx.SetBookAvailability(txCtx, bookID, false)
		})
	})
	if err != nil {
		return 0, err
	}
	return loanID, nil
}

// Return closes an open loan and makes its book available again. A loan
// that is already closed fails with ErrLoanAlreadyClosed and leaves the
// book's availability untouched.
func (e *Engine) Return(ctx context.Context, loanID int64) error {
	return retryOnConflict(ctx, e.maxAttempts, func(ctx context.Context) error {
		txCtx, cancel := context.WithTimeout(ctx, e.txTimeout)
		defer cancel()
		return e.store.WithTx(txCtx, func(tx Tx) error {
			bookID, closed, err := tx.OpenLoan(txCtx, loanID)
			if err != nil {
				return err
			}
			if closed {
				return ErrLoanAlreadyClosed
			}
			if err := tx.CloseLoan(txCtx, loanID); err != nil {
				return err
			}
			return tx.SetBookAvailability(txCtx, bookID, true)
		})
	})
}
