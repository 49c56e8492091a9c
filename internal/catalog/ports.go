package catalog

import (
	"context"
)

// Repository defines the contract for book storage.
type Repository interface {
	Insert(ctx context.Context, title, author, isbn string) (Book, error)
	GetAvailability(ctx context.Context, bookID int64) (bool, error)
	List(ctx context.Context) ([]Book, error)
}
