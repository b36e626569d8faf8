package order

import (
	"context"
	"database/sql"
	"fmt"

	"stylehub-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	ListByUser(ctx context.Context, userID int) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the order and its item snapshots in one transaction.
func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, address, city, state, postal_code, country, payment_method, total_amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, status, created_at, updated_at`,
		o.UserID,
		o.ShippingAddress.Address, o.ShippingAddress.City, o.ShippingAddress.State,
		o.ShippingAddress.PostalCode, o.ShippingAddress.Country,
		o.PaymentMethod, o.TotalAmount, o.Status,
	).Scan(&o.ID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.Int("user_id", o.UserID), zap.Error(err))
		return nil, err
	}

	for i := range o.Items {
		item := &o.Items[i]
		err = tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, product_id, name, image, price, quantity, size, color)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			o.ID, item.ProductID, item.Name, item.Image, item.Price, item.Quantity, item.Size, item.Color,
		).Scan(&item.ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.Int("order_id", o.ID),
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	return r.list(ctx,
		`SELECT o.id, o.user_id, '', '', o.address, o.city, o.state, o.postal_code, o.country,
		        o.payment_method, o.total_amount, o.status, o.created_at, o.updated_at
		 FROM orders o WHERE o.user_id = $1 ORDER BY o.created_at DESC`,
		userID,
	)
}

// ListAll joins the owning user's name and email in, admin view only.
func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx,
		`SELECT o.id, o.user_id, u.name, u.email, o.address, o.city, o.state, o.postal_code, o.country,
		        o.payment_method, o.total_amount, o.status, o.created_at, o.updated_at
		 FROM orders o JOIN users u ON o.user_id = u.id ORDER BY o.created_at DESC`,
	)
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	ids := []int{}
	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.ID, &o.UserID, &o.UserName, &o.UserEmail,
			&o.ShippingAddress.Address, &o.ShippingAddress.City, &o.ShippingAddress.State,
			&o.ShippingAddress.PostalCode, &o.ShippingAddress.Country,
			&o.PaymentMethod, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders, ids); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) attachItems(ctx context.Context, orders []Order, ids []int) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int]*Order, len(orders))
	for i := range orders {
		byID[orders[i].ID] = &orders[i]
	}

	placeholders := ""
	args := make([]any, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, product_id, name, image, price, quantity, size, color
		 FROM order_items WHERE order_id IN (`+placeholders+`) ORDER BY id`,
		args...,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		var orderID int
		err := rows.Scan(
			&item.ID, &orderID, &item.ProductID, &item.Name, &item.Image,
			&item.Price, &item.Quantity, &item.Size, &item.Color,
		)
		if err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, address, city, state, postal_code, country,
		        payment_method, total_amount, status, created_at, updated_at
		 FROM orders WHERE id = $1`,
		id,
	).Scan(
		&o.ID, &o.UserID,
		&o.ShippingAddress.Address, &o.ShippingAddress.City, &o.ShippingAddress.State,
		&o.ShippingAddress.PostalCode, &o.ShippingAddress.Country,
		&o.PaymentMethod, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Items = []OrderItem{}
	orders := []Order{o}
	if err := r.attachItems(ctx, orders, []int{o.ID}); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2",
		status, id,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update order status",
			zap.Int("order_id", id),
			zap.String("status", string(status)),
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
