package loan

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

var _ Ledger = (*PostgresRepo)(nil)

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// OpenLoansCountFor counts the borrower's loans without a return timestamp.
// This is the quota-consumption metric.
func (r *PostgresRepo) OpenLoansCountFor(ctx context.Context, borrowerID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM loans WHERE borrower_id = $1 AND return_ts IS NULL`
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, borrowerID).Scan(&count)
	return count, err
}

// ListOpenLoansWithDetail returns every outstanding loan joined with its
// borrower and book, ordered by loan id.
func (r *PostgresRepo) ListOpenLoansWithDetail(ctx context.Context) ([]OpenLoanDetail, error) {
	const query = `
		SELECT l.id, br.name, br.email, b.title, l.loan_ts
		FROM loans l
		JOIN borrowers br ON br.id = l.borrower_id
		JOIN books b ON b.id = l.book_id
		WHERE l.return_ts IS NULL
		ORDER BY l.id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []OpenLoanDetail
	for rows.Next() {
		var d OpenLoanDetail
		if err := rows.Scan(&d.LoanID, &d.BorrowerName, &d.BorrowerEmail, &d.BookTitle, &d.LoanTS); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
