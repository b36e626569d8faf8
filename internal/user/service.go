package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"stylehub-be/internal/apperr"
	"stylehub-be/internal/auth"
	"stylehub-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id int) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if name == "" || email == "" || password == "" {
		return "", nil, apperr.Validation("All fields are required")
	}
	if len(password) < 6 {
		return "", nil, apperr.Validation("Password must be at least 6 characters")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, apperr.Validation("User already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to check existing user", zap.String("email", email), zap.Error(err))
		return "", nil, apperr.Unavailable("Internal server error", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, apperr.Unavailable("Internal server error", err)
	}

	u, err := s.repo.Create(ctx, name, email, hashed)
	if err != nil {
		// Duplicate insert races past the pre-check; same outcome.
		if strings.Contains(err.Error(), "users_email_key") {
			return "", nil, apperr.Validation("User already exists")
		}
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return "", nil, apperr.Unavailable("Internal server error", err)
	}

	token, err := auth.GenerateToken(u.ID)
	if err != nil {
		log.Error("failed to generate token", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, apperr.Unavailable("Internal server error", err)
	}

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if email == "" || password == "" {
		return "", nil, apperr.Validation("Email and password are required")
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and bad password are indistinguishable to the caller.
		log.Debug("login: email not found", zap.String("email", email))
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		log.Debug("login: password mismatch", zap.Int("user_id", u.ID))
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := auth.GenerateToken(u.ID)
	if err != nil {
		log.Error("failed to generate token", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, apperr.Unavailable("Internal server error", err)
	}

	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Unavailable("Internal server error", err)
	}
	return u, nil
}
