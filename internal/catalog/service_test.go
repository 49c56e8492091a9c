package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Insert(ctx context.Context, title, author, isbn string) (Book, error) {
	args := m.Called(ctx, title, author, isbn)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepo) GetAvailability(ctx context.Context, bookID int64) (bool, error) {
	args := m.Called(ctx, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Book), args.Error(1)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		author  string
		isbn    string
		wantErr error
	}{
		{name: "empty title", title: "", author: "Robert Martin", isbn: "978-0132350884", wantErr: ErrInvalidBook},
		{name: "blank author", title: "Clean Code", author: "   ", isbn: "978-0132350884", wantErr: ErrInvalidBook},
		{name: "empty isbn", title: "Clean Code", author: "Robert Martin", isbn: "", wantErr: ErrInvalidBook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			svc := NewService(repo)

			_, err := svc.Register(context.Background(), tt.title, tt.author, tt.isbn)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Insert")
		})
	}
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockRepo)
	want := Book{ID: 1, Title: "Clean Code", Author: "Robert Martin", ISBN: "978-0132350884", Available: true}
	repo.On("Insert", mock.Anything, "Clean Code", "Robert Martin", "978-0132350884").Return(want, nil)
	svc := NewService(repo)

	got, err := svc.Register(context.Background(), "Clean Code", "Robert Martin", "978-0132350884")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Available, "a freshly registered book must be available")
	repo.AssertExpectations(t)
}

func TestService_GetAvailability(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetAvailability", mock.Anything, int64(1)).Return(true, nil)
	repo.On("GetAvailability", mock.Anything, int64(99)).Return(false, ErrNotFound)
	svc := NewService(repo)

	available, err := svc.GetAvailability(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, available)

	_, err = svc.GetAvailability(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Register_OpaqueISBN(t *testing.T) {
	// ISBNs are not validated beyond being non-empty.
	repo := new(mockRepo)
	repo.On("Insert", mock.Anything, "Some Title", "Some Author", "not-an-isbn").
		Return(Book{ID: 2, Title: "Some Title", Author: "Some Author", ISBN: "not-an-isbn", Available: true}, nil)
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "Some Title", "Some Author", "not-an-isbn")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
