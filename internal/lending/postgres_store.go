package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// openLoanIndex is the partial unique index on loans(book_id) for open
// loans. It is the second line of defense behind the row locks: a second
// concurrent insert of an open loan for the same book violates it.
const openLoanIndex = "loans_one_open_per_book"

// PostgresStore runs lending transactions on a pgx pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) WithTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin lending tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&pgTx{tx: tx}); err != nil {
		return mapPgError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(fmt.Errorf("commit lending tx: %w", err))
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) BorrowerQuota(ctx context.Context, borrowerID int64) (int, error) {
	const query = `SELECT quota FROM borrowers WHERE id = $1 FOR UPDATE`
	var quota int
	err := t.tx.QueryRow(ctx, query, borrowerID).Scan(&quota)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrBorrowerNotFound
	}
	return quota, err
}

func (t *pgTx) OpenLoanCount(ctx context.Context, borrowerID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM loans WHERE borrower_id = $1 AND return_ts IS NULL`
	var count int
	err := t.tx.QueryRow(ctx, query, borrowerID).Scan(&count)
	return count, err
}

func (t *pgTx) BookAvailability(ctx context.Context, bookID int64) (bool, error) {
	const query = `SELECT available FROM books WHERE id = $1 FOR UPDATE`
	var available bool
	err := t.tx.QueryRow(ctx, query, bookID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrBookNotFound
	}
	return available, err
}

func (t *pgTx) InsertLoan(ctx context.Context, bookID, borrowerID int64) (int64, error) {
	const query = `INSERT INTO loans (book_id, borrower_id) VALUES ($1, $2) RETURNING id`
	var id int64
	err := t.tx.QueryRow(ctx, query, bookID, borrowerID).Scan(&id)
	return id, err
}

func (t *pgTx) SetBookAvailability(ctx context.Context, bookID int64, available bool) error {
	const query = `UPDATE books SET available = $2 WHERE id = $1`
	_, err := t.tx.Exec(ctx, query, bookID, available)
	return err
}

func (t *pgTx) OpenLoan(ctx context.Context, loanID int64) (int64, bool, error) {
	const query = `SELECT book_id, return_ts FROM loans WHERE id = $1 FOR UPDATE`
	var bookID int64
	var returnTS *time.Time
	err := t.tx.QueryRow(ctx, query, loanID).Scan(&bookID, &returnTS)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, ErrLoanNotFound
	}
	return bookID, returnTS != nil, err
}

func (t *pgTx) CloseLoan(ctx context.Context, loanID int64) error {
	// The return_ts guard keeps a raced double-return from rewriting the
	// timestamp even if the caller skipped OpenLoan.
	const query = `UPDATE loans SET return_ts = now() WHERE id = $1 AND return_ts IS NULL`
	tag, err := t.tx.Exec(ctx, query, loanID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanAlreadyClosed
	}
	return nil
}

// mapPgError converts storage-level conflicts into ErrConcurrencyConflict
// so the engine can retry them. A unique violation on the open-loan index
// means another transaction lent the same book first; serialization and
// deadlock failures are transient.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == openLoanIndex {
				return fmt.Errorf("%w: %s", ErrConcurrencyConflict, pgErr.ConstraintName)
			}
		case "40001", "40P01":
			return fmt.Errorf("%w: sqlstate %s", ErrConcurrencyConflict, pgErr.Code)
		}
	}
	return err
}
