package game

import (
	"context"
	"errors"
	"testing"

	"gamestore/internal/domain"
	gamerepo "gamestore/internal/repository/game"
)

type stubRepo struct {
	created *domain.Game
	updated *domain.Game
}

func (s *stubRepo) List(_ context.Context, _ gamerepo.ListFilter) ([]domain.Game, int, error) {
	return nil, 0, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Game, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, g domain.Game) (*domain.Game, error) {
	g.ID = "game-1"
	s.created = &g
	return s.created, nil
}

func (s *stubRepo) Update(_ context.Context, id string, g domain.Game) (*domain.Game, error) {
	g.ID = id
	s.updated = &g
	return s.updated, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error { return nil }

func (s *stubRepo) Upsert(_ context.Context, g domain.Game) (*domain.Game, error) {
	return &g, nil
}

func validInput() Input {
	return Input{
		Title:       "Starfall Odyssey",
		Description: "Open-world space RPG",
		PriceCents:  5999,
		Platform:    "PC",
		Genre:       "RPG",
		Stock:       25,
		Rating:      4.5,
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubRepo{})
	ctx := context.Background()

	mutations := []struct {
		name string
		mut  func(*Input)
	}{
		{"empty title", func(in *Input) { in.Title = "  " }},
		{"empty description", func(in *Input) { in.Description = "" }},
		{"negative price", func(in *Input) { in.PriceCents = -1 }},
		{"unknown platform", func(in *Input) { in.Platform = "Dreamcast" }},
		{"unknown genre", func(in *Input) { in.Genre = "Horror" }},
		{"negative stock", func(in *Input) { in.Stock = -1 }},
		{"rating too high", func(in *Input) { in.Rating = 5.5 }},
	}
	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateTrimsFields(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	in := validInput()
	in.Title = "  Starfall Odyssey  "
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "Starfall Odyssey" {
		t.Errorf("title = %q, want trimmed", created.Title)
	}
	if repo.created.PriceCents != 5999 {
		t.Errorf("price cents = %d", repo.created.PriceCents)
	}
}

func TestUpdateValidatesBeforeRepo(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	in := validInput()
	in.Platform = ""
	if _, err := svc.Update(context.Background(), "game-1", in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if repo.updated != nil {
		t.Error("repo Update called despite invalid input")
	}
}
