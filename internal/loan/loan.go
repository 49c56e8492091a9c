package loan

import (
	"time"
)

// OpenLoanDetail is the read view of one outstanding loan, joined with the
// borrower and book it belongs to.
type OpenLoanDetail struct {
	LoanID        int64     `json:"loan_id"`
	BorrowerName  string    `json:"borrower_name"`
	BorrowerEmail string    `json:"borrower_email"`
	BookTitle     string    `json:"book_title"`
	LoanTS        time.Time `json:"loan_ts"`
}
