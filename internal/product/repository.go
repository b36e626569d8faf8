package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"stylehub-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, int, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, id int, input UpdateProduct) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = "id, name, description, price, category, images, sizes, colors, stock, featured, created_at, updated_at"

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		pq.Array(&p.Images), pq.Array(&p.Sizes), pq.Array(&p.Colors),
		&p.Stock, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, int, error) {
	log := logger.FromCtx(ctx)

	where := []string{}
	args := []any{}

	if opts.Filter.Category != "" {
		args = append(args, opts.Filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if opts.Filter.Featured != nil {
		args = append(args, *opts.Filter.Featured)
		where = append(where, fmt.Sprintf("featured = $%d", len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products"+whereClause, args...,
	).Scan(&total); err != nil {
		log.Error("db: failed to count products", zap.Error(err))
		return nil, 0, err
	}

	offset := (opts.Page - 1) * opts.Limit
	args = append(args, opts.Limit, offset)
	query := fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		productColumns, whereClause, len(args)-1, len(args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("db: failed to list products", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=$1", id,
	)
	return scanProduct(row)
}

func (r *repository) Create(ctx context.Context, input NewProduct) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO products (name, description, price, category, images, sizes, colors, stock, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+productColumns,
		input.Name, input.Description, input.Price, input.Category,
		pq.Array(input.Images), pq.Array(input.Sizes), pq.Array(input.Colors),
		input.Stock, input.Featured,
	)

	p, err := scanProduct(row)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, id int, input UpdateProduct) (*Product, error) {
	set := []string{}
	args := []any{}

	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}
	if input.Images != nil {
		add("images", pq.Array(*input.Images))
	}
	if input.Sizes != nil {
		add("sizes", pq.Array(*input.Sizes))
	}
	if input.Colors != nil {
		add("colors", pq.Array(*input.Colors))
	}
	if input.Stock != nil {
		add("stock", *input.Stock)
	}
	if input.Featured != nil {
		add("featured", *input.Featured)
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns,
	)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.FromCtx(ctx).Error("db: failed to update product",
				zap.Int("product_id", id),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to delete product",
			zap.Int("product_id", id),
			zap.Error(err),
		)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
