package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stylehub-be/internal/apperr"
	"stylehub-be/internal/logger"
	"stylehub-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, callerID int, input NewOrder) (*Order, error)
	List(ctx context.Context, caller *user.User) ([]Order, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists the checkout payload under the calling user with
// status pending. TotalAmount is stored as supplied; the server does
// not recompute it from the items.
func (s *service) Create(ctx context.Context, callerID int, input NewOrder) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int("user_id", callerID),
		zap.Int("item_count", len(input.Items)),
	)

	if err := validateNewOrder(input); err != nil {
		return nil, err
	}

	o := &Order{
		UserID:          callerID,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		TotalAmount:     input.TotalAmount,
		Status:          StatusPending,
	}
	for _, item := range input.Items {
		o.Items = append(o.Items, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, apperr.Unavailable("Failed to create order", err)
	}

	log.Info("order created",
		zap.Int("order_id", created.ID),
		zap.Float64("total_amount", created.TotalAmount),
	)

	return created, nil
}

// List is owner-scoped: admins see every order with the owning user's
// name and email joined in, everyone else only their own.
func (s *service) List(ctx context.Context, caller *user.User) ([]Order, error) {
	var (
		orders []Order
		err    error
	)

	if caller.IsAdmin() {
		orders, err = s.repo.ListAll(ctx)
	} else {
		orders, err = s.repo.ListByUser(ctx, caller.ID)
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders",
			zap.Int("user_id", caller.ID),
			zap.Error(err),
		)
		return nil, apperr.Unavailable("Failed to fetch orders", err)
	}

	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("Invalid status: %s", status))
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "Order not found", ErrOrderNotFound)
		}
		return nil, apperr.Unavailable("Failed to fetch order", err)
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, apperr.Wrap(apperr.KindValidation,
			fmt.Sprintf("Cannot transition order from %s to %s", current.Status, status),
			ErrInvalidTransition,
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperr.Unavailable("Failed to update order status", err)
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Int("order_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)

	current.Status = status
	return current, nil
}

func validateNewOrder(input NewOrder) error {
	if len(input.Items) == 0 {
		return apperr.Validation("Order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return apperr.Validation("Item quantity must be at least 1")
		}
		if item.Price < 0 {
			return apperr.Validation("Item price cannot be negative")
		}
	}
	if input.TotalAmount < 0 {
		return apperr.Validation("Total amount cannot be negative")
	}

	validMethod := false
	for _, m := range PaymentMethods {
		if m == input.PaymentMethod {
			validMethod = true
			break
		}
	}
	if !validMethod {
		return apperr.Validation(fmt.Sprintf("Invalid payment method: %s", input.PaymentMethod))
	}

	addr := input.ShippingAddress
	if addr.Address == "" || addr.City == "" || addr.State == "" ||
		addr.PostalCode == "" || addr.Country == "" {
		return apperr.Validation("Shipping address is incomplete")
	}

	return nil
}
