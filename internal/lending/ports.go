package lending

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// Service is the lending API consumed by transport handlers.
type Service interface {
	Borrow(ctx context.Context, bookID, borrowerID int64) (int64, error)
	Return(ctx context.Context, loanID int64) error
}

// Tx is the set of reads and writes available inside one lending
// transaction. Reads that guard a later write take row locks, so two racing
// transactions on the same book or borrower serialize instead of both
// passing the check.
type Tx interface {
	BorrowerQuota(ctx context.Context, borrowerID int64) (int, error)
	OpenLoanCount(ctx context.Context, borrowerID int64) (int, error)
	BookAvailability(ctx context.Context, bookID int64) (bool, error)
	InsertLoan(ctx context.Context, bookID, borrowerID int64) (int64, error)
	SetBookAvailability(ctx context.Context, bookID int64, available bool) error
	OpenLoan(ctx context.Context, loanID int64) (bookID int64, closed bool, err error)
	CloseLoan(ctx context.Context, loanID int64) error
}

// Store runs fn inside a single transaction. The transaction commits only
// if fn returns nil; any error aborts it with no partial writes.
type Store interface {
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}
