package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lendingapi/internal/catalog"
	"lendingapi/internal/testutil"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) Register(ctx context.Context, title, author, isbn string) (catalog.Book, error) {
	args := m.Called(ctx, title, author, isbn)
	return args.Get(0).(catalog.Book), args.Error(1)
}

func (m *mockCatalogService) List(ctx context.Context) ([]catalog.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Book), args.Error(1)
}

func TestBookHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mockCatalogService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: map[string]string{"title": "Clean Code", "author": "Robert Martin", "isbn": "978-0132350884"},
			setupMock: func(svc *mockCatalogService) {
				svc.On("Register", mock.Anything, "Clean Code", "Robert Martin", "978-0132350884").
					Return(catalog.Book{ID: 1, Title: "Clean Code", Author: "Robert Martin", ISBN: "978-0132350884", Available: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           map[string]string{"author": "Robert Martin", "isbn": "978-0132350884"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "missing isbn",
			body:           map[string]string{"title": "Clean Code", "author": "Robert Martin"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "repository failure",
			body: map[string]string{"title": "Clean Code", "author": "Robert Martin", "isbn": "978-0132350884"},
			setupMock: func(svc *mockCatalogService) {
				svc.On("Register", mock.Anything, "Clean Code", "Robert Martin", "978-0132350884").
					Return(catalog.Book{}, context.DeadlineExceeded)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockCatalogService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			handler := NewBookHandler(svc)

			w := httptest.NewRecorder()
			handler.Create(w, testutil.NewRequest(http.MethodPost, "/books", tt.body))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, testutil.ErrorCode(resp))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestBookHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewBookHandler(new(mockCatalogService))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/books", nil)
	handler.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_List(t *testing.T) {
	svc := new(mockCatalogService)
	svc.On("List", mock.Anything).Return([]catalog.Book{
		{ID: 1, Title: "Clean Code", Author: "Robert Martin", ISBN: "978-0132350884", Available: true},
		{ID: 2, Title: "The Go Programming Language", Author: "Donovan & Kernighan", ISBN: "978-0134190440", Available: false},
	}, nil)
	handler := NewBookHandler(svc)

	w := httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/books", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	data, ok := resp.Body["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
	svc.AssertExpectations(t)
}
