package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gamestore/internal/domain"
)

type stubOrderRepo struct {
	created      *domain.Order
	createErr    error
	createdWith  []domain.CartItem
	statusOrder  *domain.Order
	statusErr    error
	statusCalled string
}

func (s *stubOrderRepo) CreateFromCart(_ context.Context, userID string, items []domain.CartItem) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.createdWith = items
	if s.created == nil {
		s.created = &domain.Order{ID: "order-1", UserID: userID, Status: domain.OrderStatusPending}
	}
	return s.created, nil
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, _, _ string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _ string, status string) (*domain.Order, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	s.statusCalled = status
	return s.statusOrder, nil
}

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ string) (*domain.Cart, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cart, nil
}

type stubPublisher struct {
	published []*domain.Order
	err       error
}

func (s *stubPublisher) OrderCreated(_ context.Context, o *domain.Order) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, o)
	return nil
}

func TestCreateEmptyCart(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{cart: &domain.Cart{ID: "cart-1"}}, nil, nil)

	_, err := svc.Create(context.Background(), "user-1")
	require.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreateMissingCartTreatedAsEmpty(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartRepo{err: domain.ErrNotFound}, nil, nil)

	_, err := svc.Create(context.Background(), "user-1")
	require.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreatePassesCartItems(t *testing.T) {
	items := []domain.CartItem{
		{ID: "item-1", GameID: "game-1", Quantity: 2},
		{ID: "item-2", GameID: "game-2", Quantity: 1},
	}
	orders := &stubOrderRepo{}
	carts := &stubCartRepo{cart: &domain.Cart{ID: "cart-1", Items: items}}
	events := &stubPublisher{}
	svc := New(orders, carts, events, nil)

	order, err := svc.Create(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "order-1", order.ID)
	require.Equal(t, items, orders.createdWith)

	require.Len(t, events.published, 1)
	require.Equal(t, order, events.published[0])
}

func TestCreatePropagatesStockError(t *testing.T) {
	orders := &stubOrderRepo{createErr: domain.ErrInsufficientStock}
	carts := &stubCartRepo{cart: &domain.Cart{
		ID:    "cart-1",
		Items: []domain.CartItem{{ID: "item-1", GameID: "game-1", Quantity: 99}},
	}}
	events := &stubPublisher{}
	svc := New(orders, carts, events, nil)

	_, err := svc.Create(context.Background(), "user-1")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Empty(t, events.published, "no event for a failed checkout")
}

func TestCreateSurvivesPublishFailure(t *testing.T) {
	orders := &stubOrderRepo{}
	carts := &stubCartRepo{cart: &domain.Cart{
		ID:    "cart-1",
		Items: []domain.CartItem{{ID: "item-1", GameID: "game-1", Quantity: 1}},
	}}
	svc := New(orders, carts, &stubPublisher{err: errors.New("broker down")}, nil)

	order, err := svc.Create(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, order)
}

func TestUpdateStatusValidation(t *testing.T) {
	orders := &stubOrderRepo{statusOrder: &domain.Order{ID: "order-1", Status: domain.OrderStatusCompleted}}
	svc := New(orders, &stubCartRepo{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "order-1", "shipped")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Empty(t, orders.statusCalled)

	got, err := svc.UpdateStatus(context.Background(), "order-1", domain.OrderStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusCompleted, got.Status)
	require.Equal(t, domain.OrderStatusCompleted, orders.statusCalled)
}
