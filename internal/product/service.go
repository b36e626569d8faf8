package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"stylehub-be/internal/apperr"
	"stylehub-be/internal/logger"

	"go.uber.org/zap"
)

const defaultPageSize = 12

type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, id int, input UpdateProduct) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultPageSize
	} else if opts.Limit > 100 {
		opts.Limit = 100
	}

	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, apperr.Unavailable("Failed to fetch products", err)
	}

	pages := (total + opts.Limit - 1) / opts.Limit

	log.Info("product list success",
		zap.Int("count", len(items)),
		zap.Int("page", opts.Page),
		zap.Int("total", total),
		zap.Duration("duration", time.Since(start)),
	)

	return &ListResult{
		Items: items,
		Page:  opts.Page,
		Pages: pages,
		Total: total,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Unavailable("Failed to fetch product", err)
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, input NewProduct) (*Product, error) {
	if err := validateNewProduct(input); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, apperr.Unavailable("Failed to create product", err)
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, id int, input UpdateProduct) (*Product, error) {
	if !hasAnyUpdateField(input) {
		return nil, apperr.Validation("No fields to update")
	}
	if err := validateUpdateProduct(input); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Unavailable("Failed to update product", err)
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Unavailable("Failed to delete product", err)
	}

	logger.FromCtx(ctx).Info("product deleted", zap.Int("product_id", id))
	return nil
}

func validateNewProduct(input NewProduct) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperr.Validation("Product name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apperr.Validation("Product description is required")
	}
	if input.Price < 0 {
		return apperr.Validation("Price cannot be negative")
	}
	if input.Stock < 0 {
		return apperr.Validation("Stock cannot be negative")
	}
	if !validCategory(input.Category) {
		return apperr.Validation(fmt.Sprintf("Invalid category: %s", input.Category))
	}
	if err := validateSizes(input.Sizes); err != nil {
		return err
	}
	return nil
}

func validateUpdateProduct(input UpdateProduct) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return apperr.Validation("Product name cannot be empty")
	}
	if input.Price != nil && *input.Price < 0 {
		return apperr.Validation("Price cannot be negative")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return apperr.Validation("Stock cannot be negative")
	}
	if input.Category != nil && !validCategory(*input.Category) {
		return apperr.Validation(fmt.Sprintf("Invalid category: %s", *input.Category))
	}
	if input.Sizes != nil {
		if err := validateSizes(*input.Sizes); err != nil {
			return err
		}
	}
	return nil
}

func hasAnyUpdateField(input UpdateProduct) bool {
	return input.Name != nil || input.Description != nil || input.Price != nil ||
		input.Category != nil || input.Images != nil || input.Sizes != nil ||
		input.Colors != nil || input.Stock != nil || input.Featured != nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func validateSizes(sizes []string) error {
	for _, s := range sizes {
		valid := false
		for _, known := range Sizes {
			if s == known {
				valid = true
				break
			}
		}
		if !valid {
			return apperr.Validation(fmt.Sprintf("Invalid size: %s", s))
		}
	}
	return nil
}
