package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"gamestore/internal/domain"
)

// Service is the checkout engine: it converts a cart into an immutable order
// and owns order lifecycle queries.
type Service struct {
	orders orderRepo
	carts  cartRepo
	events eventPublisher
	logger *log.Logger
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, userID string, items []domain.CartItem) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
}

type eventPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
}

func New(orders orderRepo, carts cartRepo, events eventPublisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, carts: carts, events: events, logger: logger}
}

// Create checks out the user's cart. Validation and commit run item by item
// inside one repository transaction, so a failure on any item leaves every
// game's stock untouched and creates no order.
func (s *Service) Create(ctx context.Context, userID string) (*domain.Order, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order, err := s.orders.CreateFromCart(ctx, userID, cart.Items)
	if err != nil {
		return nil, err
	}

	// Event delivery never fails the checkout.
	if s.events != nil {
		if err := s.events.OrderCreated(ctx, order); err != nil {
			s.logger.Printf("order service: publish order.created id=%s error=%v", order.ID, err)
		}
	}

	return order, nil
}

// List returns the user's orders, most recent first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Get returns one order scoped to the user.
func (s *Service) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, userID, orderID)
}

// UpdateStatus overwrites the order status. Any status can reach any other;
// gating who may call this belongs to the authorization layer.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid order status: %w", domain.ErrValidation)
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}
