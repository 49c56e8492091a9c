package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrInvalidBook is returned when a registration is missing a required field.
var ErrInvalidBook = errors.New("title, author and isbn are required")

// Book represents a book in the lending catalog. Available is false exactly
// while an open loan references the book; only the lending transaction
// flips it.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}
