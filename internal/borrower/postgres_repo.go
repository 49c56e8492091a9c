package borrower

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Insert(ctx context.Context, name, email string, role Role, quota int) (Borrower, error) {
	const query = `
		INSERT INTO borrowers (name, email, role, quota)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, role, quota, created_at
	`
	var b Borrower
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, name, email, string(role), quota).Scan(
		&b.ID, &b.Name, &b.Email, &b.Role, &b.Quota, &b.CreatedAt,
	)
	if err != nil {
		return Borrower{}, err
	}
	return b, nil
}

func (r *PostgresRepo) GetQuota(ctx context.Context, borrowerID int64) (int, error) {
	const query = `SELECT quota FROM borrowers WHERE id = $1`
	var quota int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, borrowerID).Scan(&quota)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return quota, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Borrower, error) {
	const query = `
		SELECT id, name, email, role, quota, created_at
		FROM borrowers
		ORDER BY id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var borrowers []Borrower
	for rows.Next() {
		var b Borrower
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Role, &b.Quota, &b.CreatedAt); err != nil {
			return nil, err
		}
		borrowers = append(borrowers, b)
	}
	return borrowers, rows.Err()
}
