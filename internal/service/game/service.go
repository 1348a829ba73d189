package game

import (
	"context"
	"fmt"
	"strings"

	"gamestore/internal/domain"
	gamerepo "gamestore/internal/repository/game"
)

type Service struct {
	repo gamerepo.Repository
}

func New(repo gamerepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries admin create/update payloads. Price is in cents.
type Input struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"priceCents"`
	Platform    string  `json:"platform"`
	Genre       string  `json:"genre"`
	CoverImage  string  `json:"coverImage"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("description is required: %w", domain.ErrValidation)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("price must be positive: %w", domain.ErrValidation)
	}
	if !domain.ValidPlatform(in.Platform) {
		return fmt.Errorf("platform not available: %w", domain.ErrValidation)
	}
	if !domain.ValidGenre(in.Genre) {
		return fmt.Errorf("invalid genre: %w", domain.ErrValidation)
	}
	if in.Stock < 0 {
		return fmt.Errorf("stock must be positive: %w", domain.ErrValidation)
	}
	if in.Rating < 0 || in.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5: %w", domain.ErrValidation)
	}
	return nil
}

func (s *Service) List(ctx context.Context, f gamerepo.ListFilter) ([]domain.Game, int, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Game, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Game{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Platform:    in.Platform,
		Genre:       in.Genre,
		CoverImage:  in.CoverImage,
		Stock:       in.Stock,
		Rating:      in.Rating,
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Game, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, domain.Game{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Platform:    in.Platform,
		Genre:       in.Genre,
		CoverImage:  in.CoverImage,
		Stock:       in.Stock,
		Rating:      in.Rating,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
