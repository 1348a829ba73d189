package cart

import (
	"context"

	"gamestore/internal/domain"
)

type Repository interface {
	// GetOrCreate returns the user's cart, creating an empty one when absent.
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	// GetByUser returns the user's cart with items populated, or ErrNotFound.
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, gameID string, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	// RemoveItem is a no-op when the item is not in the cart.
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
}
