package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lendingapi/internal/catalog"
	"lendingapi/internal/httpx"
)

// CatalogService is the catalog surface the handler needs.
type CatalogService interface {
	Register(ctx context.Context, title, author, isbn string) (catalog.Book, error)
	List(ctx context.Context) ([]catalog.Book, error)
}

type BookHandler struct {
	svc CatalogService
}

func NewBookHandler(svc CatalogService) *BookHandler {
	return &BookHandler{svc: svc}
}

type registerBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

// Create registers a new book in the catalog.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req registerBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book payload", details)
		return
	}

	book, err := h.svc.Register(r.Context(), req.Title, req.Author, req.ISBN)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidBook) {
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not register book", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, book)
}

// List returns every book with its availability flag.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list books", nil)
		return
	}
	if books == nil {
		books = []catalog.Book{}
	}
	httpx.JSONSuccess(r, w, books)
}
