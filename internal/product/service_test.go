package product

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"stylehub-be/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]Product, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Product), args.Int(1), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewProduct) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, input UpdateProduct) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validInput() NewProduct {
	return NewProduct{
		Name:        "Denim Jacket",
		Description: "A jacket",
		Price:       89.99,
		Category:    "men",
		Images:      []string{"https://example.com/1.jpg"},
		Sizes:       []string{"M", "L"},
		Colors:      []string{"Blue"},
		Stock:       10,
	}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesPagination", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.MatchedBy(func(opts ListOptions) bool {
			return opts.Page == 1 && opts.Limit == 12
		})).Return([]Product{}, 0, nil)

		_, err := svc.List(ctx, ListOptions{Page: 0, Limit: 0})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ComputesTotalPages", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		items := make([]Product, 5)
		mockRepo.On("List", ctx, mock.Anything).Return(items, 25, nil)

		result, err := svc.List(ctx, ListOptions{Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Pages) // ceil(25/10)
		assert.Equal(t, 25, result.Total)
		assert.Equal(t, 3, result.Page)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.Anything).Return([]Product{}, 24, nil)

		result, err := svc.List(ctx, ListOptions{Page: 1, Limit: 12})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Pages)
	})

	t.Run("DBError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("List", ctx, mock.Anything).Return(nil, 0, errors.New("db error"))

		_, err := svc.List(ctx, ListOptions{})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &Product{ID: 1, Name: "Denim Jacket"}
		mockRepo.On("GetByID", ctx, 1).Return(expected, nil)

		p, err := svc.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, expected, p)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, 99).Return(nil, sql.ErrNoRows)

		_, err := svc.GetByID(ctx, 99)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		created := &Product{ID: 1, Name: input.Name}
		mockRepo.On("Create", ctx, input).Return(created, nil)

		p, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, created, p)
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		input.Category = "shoes"

		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("InvalidSize", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		input.Sizes = []string{"M", "XXXL"}

		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("NegativePrice", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		input.Price = -1

		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("NegativeStock", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		input.Stock = -5

		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("EmptyName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		input.Name = "  "

		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		price := 99.99
		input := UpdateProduct{Price: &price}
		updated := &Product{ID: 1, Price: price}
		mockRepo.On("Update", ctx, 1, input).Return(updated, nil)

		p, err := svc.Update(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, updated, p)
	})

	t.Run("NoFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, 1, UpdateProduct{})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		bad := "shoes"
		_, err := svc.Update(ctx, 1, UpdateProduct{Category: &bad})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		price := 10.0
		input := UpdateProduct{Price: &price}
		mockRepo.On("Update", ctx, 99, input).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, 99, input)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Delete", ctx, 1).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Delete", ctx, 99).Return(sql.ErrNoRows)

		err := svc.Delete(ctx, 99)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
