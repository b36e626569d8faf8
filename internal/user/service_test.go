package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"stylehub-be/internal/apperr"
	"stylehub-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, password string) (*User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	name := "John Doe"
	email := "test@example.com"
	password := "password123"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expectedUser := &User{
			ID:    1,
			Name:  name,
			Email: email,
			Role:  RoleUser,
		}

		mockRepo.On("FindByEmail", ctx, email).Return(nil, sql.ErrNoRows)
		mockRepo.On("Create", ctx, name, email, mock.AnythingOfType("string")).Return(expectedUser, nil)

		token, u, err := svc.Register(ctx, name, email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, expectedUser, u)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmailExists", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(&User{ID: 1, Email: email}, nil)

		_, _, err := svc.Register(ctx, name, email, password)

		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, "User already exists", apperr.Message(err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateRace", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(nil, sql.ErrNoRows)
		mockRepo.On("Create", ctx, name, email, mock.Anything).
			Return(nil, errors.New("duplicate key value violates unique constraint \"users_email_key\""))

		_, _, err := svc.Register(ctx, name, email, password)

		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, "User already exists", apperr.Message(err))
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, _, err := svc.Register(ctx, "", email, password)

		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("ShortPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, _, err := svc.Register(ctx, name, email, "12345")

		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, "Password must be at least 6 characters", apperr.Message(err))
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(nil, sql.ErrNoRows)
		mockRepo.On("Create", ctx, name, email, mock.Anything).Return(nil, errors.New("db error"))

		_, _, err := svc.Register(ctx, name, email, password)

		require.Error(t, err)
		assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	email := "test@example.com"
	password := "password123"

	hashedPassword, _ := auth.HashPassword(password)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		u := &User{
			ID:       1,
			Email:    email,
			Password: hashedPassword,
			Role:     RoleUser,
		}

		mockRepo.On("FindByEmail", ctx, email).Return(u, nil)

		token, got, err := svc.Login(ctx, email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, u, got)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, email, password)

		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		assert.Equal(t, "Invalid credentials", apperr.Message(err))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		u := &User{ID: 1, Email: email, Password: hashedPassword}
		mockRepo.On("FindByEmail", ctx, email).Return(u, nil)

		_, _, err := svc.Login(ctx, email, "wrongpassword")

		require.Error(t, err)
		// Same kind and message as the unknown-email case.
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
		assert.Equal(t, "Invalid credentials", apperr.Message(err))
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, _, err := svc.Login(ctx, "", "")

		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := &User{ID: 1, Email: "test@example.com"}
		mockRepo.On("FindByID", ctx, 1).Return(expected, nil)

		u, err := svc.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, expected, u)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, 99).Return(nil, sql.ErrNoRows)

		_, err := svc.GetByID(ctx, 99)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Equal(t, "User not found", apperr.Message(err))
	})

	t.Run("DBError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, 1).Return(nil, errors.New("connection refused"))

		_, err := svc.GetByID(ctx, 1)
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	})
}
