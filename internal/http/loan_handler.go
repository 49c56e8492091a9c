package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lendingapi/internal/httpx"
	"lendingapi/internal/lending"
	"lendingapi/internal/loan"
)

// LoanLedger is the ledger read surface the handler needs.
type LoanLedger interface {
	ListOpenLoansWithDetail(ctx context.Context) ([]loan.OpenLoanDetail, error)
}

type LoanHandler struct {
	engine lending.Service
	ledger LoanLedger
}

func NewLoanHandler(engine lending.Service, ledger LoanLedger) *LoanHandler {
	return &LoanHandler{engine: engine, ledger: ledger}
}

type borrowRequest struct {
	BookID     int64 `json:"book_id" validate:"required,gt=0"`
	BorrowerID int64 `json:"borrower_id" validate:"required,gt=0"`
}

type borrowResponse struct {
	LoanID int64 `json:"loan_id"`
}

// Borrow lends a book to a borrower.
func (h *LoanHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid loan payload", details)
		return
	}

	loanID, err := h.engine.Borrow(r.Context(), req.BookID, req.BorrowerID)
	if err != nil {
		writeLendingError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, borrowResponse{LoanID: loanID})
}

// Return closes a loan. The loan id comes from the path:
// POST /loans/{id}/return.
func (h *LoanHandler) Return(w http.ResponseWriter, r *http.Request) {
	const prefix = "/loans/"
	path := strings.TrimPrefix(r.URL.Path, prefix)
	idPart, ok := strings.CutSuffix(path, "/return")
	if !ok || idPart == "" || strings.Contains(idPart, "/") {
		http.NotFound(w, r)
		return
	}
	loanID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || loanID <= 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid loan id", nil)
		return
	}

	if err := h.engine.Return(r.Context(), loanID); err != nil {
		writeLendingError(r, w, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ListOpen returns the currently outstanding loans with borrower and book
// detail, ordered by loan id.
func (h *LoanHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	details, err := h.ledger.ListOpenLoansWithDetail(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "could not list open loans", nil)
		return
	}
	if details == nil {
		details = []loan.OpenLoanDetail{}
	}
	httpx.JSONSuccess(r, w, details)
}

// writeLendingError maps engine errors onto statuses and stable codes so
// callers can show the specific rejection reason.
func writeLendingError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lending.ErrBookNotFound),
		errors.Is(err, lending.ErrBorrowerNotFound),
		errors.Is(err, lending.ErrLoanNotFound):
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, lending.ErrQuotaExceeded):
		httpx.JSONError(r, w, http.StatusConflict, "QUOTA_EXCEEDED", "borrower has reached their loan quota", nil)
	case errors.Is(err, lending.ErrBookUnavailable):
		httpx.JSONError(r, w, http.StatusConflict, "BOOK_UNAVAILABLE", "book is already on loan", nil)
	case errors.Is(err, lending.ErrLoanAlreadyClosed):
		httpx.JSONError(r, w, http.StatusConflict, "LOAN_ALREADY_CLOSED", "loan is already closed", nil)
	case errors.Is(err, lending.ErrConcurrencyConflict):
		httpx.JSONError(r, w, http.StatusConflict, "CONCURRENCY_CONFLICT", "request lost a concurrent race, retry", nil)
	default:
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "lending operation failed", nil)
	}
}
