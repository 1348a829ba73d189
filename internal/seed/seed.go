package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type gameSeed struct {
	Title       string
	Description string
	PriceCents  int64
	Platform    string
	Genre       string
	CoverImage  string
	Stock       int
	Rating      float64
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "admin", "admin@gamestore.local", "admin-password"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	games := []gameSeed{
		{
			Title:       "Starfall Odyssey",
			Description: "Open-world space RPG with a branching story",
			PriceCents:  5999,
			Platform:    "PC",
			Genre:       "RPG",
			CoverImage:  "/uploads/starfall-odyssey.jpg",
			Stock:       25,
			Rating:      4.5,
		},
		{
			Title:       "Turbo Rally Legends",
			Description: "Arcade rally racing across forty tracks",
			PriceCents:  3999,
			Platform:    "PlayStation",
			Genre:       "Racing",
			CoverImage:  "/uploads/turbo-rally.jpg",
			Stock:       40,
			Rating:      4.1,
		},
		{
			Title:       "Puzzle Harbor",
			Description: "Relaxing logic puzzles set in a seaside town",
			PriceCents:  1499,
			Platform:    "Nintendo Switch",
			Genre:       "Puzzle",
			CoverImage:  "/uploads/puzzle-harbor.jpg",
			Stock:       60,
			Rating:      4.8,
		},
	}

	for _, g := range games {
		if err := upsertGame(ctx, pool, g); err != nil {
			return fmt.Errorf("upsert game %q: %w", g.Title, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, username, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (username, email, password_hash, role)
VALUES ($1, $2, $3, 'admin')
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, username, email, string(hashed))
	return err
}

func upsertGame(ctx context.Context, pool *pgxpool.Pool, g gameSeed) error {
	const q = `
INSERT INTO games (title, description, price_cents, platform, genre, cover_image, stock, rating)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (title) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    platform = EXCLUDED.platform,
    genre = EXCLUDED.genre,
    cover_image = EXCLUDED.cover_image,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q, g.Title, g.Description, g.PriceCents, g.Platform, g.Genre, g.CoverImage, g.Stock, g.Rating)
	return err
}
