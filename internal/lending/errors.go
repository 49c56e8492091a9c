package lending

import (
	"errors"
)

// ErrBookNotFound is returned when the requested book id does not exist.
var ErrBookNotFound = errors.New("book not found")

// ErrBorrowerNotFound is returned when the requested borrower id does not exist.
var ErrBorrowerNotFound = errors.New("borrower not found")

// ErrLoanNotFound is returned when the requested loan id does not exist.
var ErrLoanNotFound = errors.New("loan not found")

// ErrQuotaExceeded is returned when a borrower is at or above their loan quota.
var ErrQuotaExceeded = errors.New("borrower loan quota exceeded")

// ErrBookUnavailable is returned when the book already has an open loan.
var ErrBookUnavailable = errors.New("book is not available")

// ErrLoanAlreadyClosed is returned when returning a loan whose return
// timestamp is already set.
var ErrLoanAlreadyClosed = errors.New("loan is already closed")

// ErrConcurrencyConflict is returned when a lending transaction lost a
// concurrent race after all retries. It is safe to retry the request.
var ErrConcurrencyConflict = errors.New("lending transaction conflict")
