package game

import (
	"context"

	"gamestore/internal/domain"
)

// ListFilter narrows and pages the catalog listing.
type ListFilter struct {
	Genre    string
	Platform string
	Search   string
	Page     int
	Limit    int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Game, int, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, g domain.Game) (*domain.Game, error)
	Update(ctx context.Context, id string, g domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, g domain.Game) (*domain.Game, error)
}
