package borrower

import (
	"context"
	"fmt"
	"strings"
)

// Service provides borrower business logic.
type Service struct {
	repo        Repository
	strictRoles bool
}

// Option configures a Service.
type Option func(*Service)

// WithStrictRoles makes Register reject roles outside the known set instead
// of accepting them with a zero quota.
func WithStrictRoles() Option {
	return func(s *Service) { s.strictRoles = true }
}

// NewService creates a new borrower service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a new borrower. The quota is derived from the role at
// registration time. An unrecognized role is accepted with quota 0 unless
// the service runs in strict mode, in which case it fails with
// ErrUnknownRole.
func (s *Service) Register(ctx context.Context, name, email string, role Role) (Borrower, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return Borrower{}, ErrInvalidBorrower
	}
	if s.strictRoles && !role.Recognized() {
		return Borrower{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return s.repo.Insert(ctx, name, email, role, role.Quota())
}

// GetQuota returns the borrower's loan quota.
func (s *Service) GetQuota(ctx context.Context, borrowerID int64) (int, error) {
	return s.repo.GetQuota(ctx, borrowerID)
}

// List returns every borrower in insertion order.
func (s *Service) List(ctx context.Context) ([]Borrower, error) {
	return s.repo.List(ctx)
}
