package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"lendingapi/internal/borrower"
	"lendingapi/internal/httpx"
)

// BorrowerService is the borrower surface the handler needs.
type BorrowerService interface {
	Register(ctx context.Context, name, email string, role borrower.Role) (borrower.Borrower, error)
	List(ctx context.Context) ([]borrower.Borrower, error)
}

type BorrowerHandler struct {
	svc BorrowerService
}

func NewBorrowerHandler(svc BorrowerService) *BorrowerHandler {
	return &BorrowerHandler{svc: svc}
}

type registerBorrowerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Role  string `json:"role" validate:"required"`
}

// Create registers a new borrower.
func (h *BorrowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req registerBorrowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid borrower payload", details)
		return
	}

	b, err := h.svc.Register(r.Context(), req.Name, req.Email, borrower.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, borrower.ErrInvalidBorrower):
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case errors.Is(err, borrower.ErrUnknownRole):
			httpx.JSONError(r, w, http.StatusBadRequest, "UNKNOWN_ROLE", err.Error(), nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not register borrower", nil)
		}
		return
	}
	httpx.JSONSuccessCreated(r, w, b)
}

// List returns every borrower.
func (h *BorrowerHandler) List(w http.ResponseWriter, r *http.Request) {
	borrowers, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list borrowers", nil)
		return
	}
	if borrowers == nil {
		borrowers = []borrower.Borrower{}
	}
	httpx.JSONSuccess(r, w, borrowers)
}
