package cart

import (
	"context"
	"errors"
	"fmt"

	"gamestore/internal/domain"
)

// Service implements the cart aggregate: per-user item mutations with the
// derived total always recomputed server-side.
type Service struct {
	repo  cartRepo
	games gameRepo
}

type cartRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, gameID string, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
}

type gameRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Game, error)
}

func New(repo cartRepo, games gameRepo) *Service {
	return &Service{repo: repo, games: games}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// Add puts quantity of a game into the cart, merging with an existing item
// for the same game.
func (s *Service) Add(ctx context.Context, userID, gameID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrValidation)
	}
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: game %s", domain.ErrNotFound, gameID)
		}
		return nil, err
	}
	if game.Stock < quantity {
		return nil, fmt.Errorf("%w: not enough stock for %s", domain.ErrInsufficientStock, game.Title)
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddItem(ctx, cart.ID, gameID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByUser(ctx, userID)
}

// UpdateItem replaces an item's quantity.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", domain.ErrValidation)
	}
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := findItem(cart.Items, itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	game, err := s.games.GetByID(ctx, item.GameID)
	if err != nil {
		return nil, err
	}
	if game.Stock < quantity {
		return nil, fmt.Errorf("%w: not enough stock for %s", domain.ErrInsufficientStock, game.Title)
	}
	if err := s.repo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByUser(ctx, userID)
}

// Remove deletes an item from the cart. Removing an item that is not there
// is a no-op; a missing cart is an error.
func (s *Service) Remove(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}
	return s.repo.GetByUser(ctx, userID)
}

// Clear empties the cart and resets the total.
func (s *Service) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Clear(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.repo.GetByUser(ctx, userID)
}

func findItem(items []domain.CartItem, itemID string) *domain.CartItem {
	for i := range items {
		if items[i].ID == itemID {
			return &items[i]
		}
	}
	return nil
}
