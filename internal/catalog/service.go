package catalog

import (
	"context"
	"strings"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register adds a new book to the catalog. New books start available.
// The ISBN is stored as an opaque string; no checksum validation is done.
func (s *Service) Register(ctx context.Context, title, author, isbn string) (Book, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(author) == "" || strings.TrimSpace(isbn) == "" {
		return Book{}, ErrInvalidBook
	}
	return s.repo.Insert(ctx, title, author, isbn)
}

// GetAvailability reports whether the book can currently be borrowed.
func (s *Service) GetAvailability(ctx context.Context, bookID int64) (bool, error) {
	return s.repo.GetAvailability(ctx, bookID)
}

// List returns every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}
