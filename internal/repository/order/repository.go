package order

import (
	"context"

	"gamestore/internal/domain"
)

type Repository interface {
	// CreateFromCart commits a checkout in a single transaction: per item an
	// atomic conditional stock decrement, the order insert with prices read in
	// the same statement, and the cart wipe. Any failure rolls everything back.
	CreateFromCart(ctx context.Context, userID string, items []domain.CartItem) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}
