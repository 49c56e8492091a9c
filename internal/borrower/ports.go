package borrower

import (
	"context"
)

// Repository defines the contract for borrower storage.
type Repository interface {
	Insert(ctx context.Context, name, email string, role Role, quota int) (Borrower, error)
	GetQuota(ctx context.Context, borrowerID int64) (int, error)
	List(ctx context.Context) ([]Borrower, error)
}
