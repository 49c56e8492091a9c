package loan

import (
	"context"
)

// Ledger defines the read side of the loan ledger. Loans are created and
// closed exclusively by the lending engine's transactions, so no mutators
// appear here.
type Ledger interface {
	OpenLoansCountFor(ctx context.Context, borrowerID int64) (int, error)
	ListOpenLoansWithDetail(ctx context.Context) ([]OpenLoanDetail, error)
}
