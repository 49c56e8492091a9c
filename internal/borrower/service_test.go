package borrower

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Insert(ctx context.Context, name, email string, role Role, quota int) (Borrower, error) {
	args := m.Called(ctx, name, email, role, quota)
	return args.Get(0).(Borrower), args.Error(1)
}

func (m *mockRepo) GetQuota(ctx context.Context, borrowerID int64) (int, error) {
	args := m.Called(ctx, borrowerID)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]Borrower, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Borrower), args.Error(1)
}

func TestService_Register_Validation(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "", "ada@example.com", RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidBorrower)

	_, err = svc.Register(context.Background(), "Ada Lovelace", "  ", RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidBorrower)

	repo.AssertNotCalled(t, "Insert")
}

func TestService_Register_QuotaFromRole(t *testing.T) {
	tests := []struct {
		name      string
		role      Role
		wantQuota int
	}{
		{name: "student", role: RoleStudent, wantQuota: 1},
		{name: "teacher", role: RoleTeacher, wantQuota: 2},
		{name: "other", role: RoleOther, wantQuota: 0},
		{name: "unrecognized role accepted with zero quota", role: Role("Staff"), wantQuota: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			repo.On("Insert", mock.Anything, "Ada Lovelace", "ada@example.com", tt.role, tt.wantQuota).
				Return(Borrower{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Role: tt.role, Quota: tt.wantQuota}, nil)
			svc := NewService(repo)

			got, err := svc.Register(context.Background(), "Ada Lovelace", "ada@example.com", tt.role)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantQuota, got.Quota)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_GetQuota(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetQuota", mock.Anything, int64(1)).Return(2, nil)
	repo.On("GetQuota", mock.Anything, int64(99)).Return(0, ErrNotFound)
	svc := NewService(repo)

	quota, err := svc.GetQuota(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, quota)

	_, err = svc.GetQuota(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Register_StrictRoles(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo, WithStrictRoles())

	_, err := svc.Register(context.Background(), "Grace Hopper", "grace@example.com", Role("Staff"))

	assert.ErrorIs(t, err, ErrUnknownRole)
	repo.AssertNotCalled(t, "Insert")

	// Known roles still register fine in strict mode.
	repo.On("Insert", mock.Anything, "Grace Hopper", "grace@example.com", RoleTeacher, 2).
		Return(Borrower{ID: 2, Role: RoleTeacher, Quota: 2}, nil)
	_, err = svc.Register(context.Background(), "Grace Hopper", "grace@example.com", RoleTeacher)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
