package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"gamestore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gameColumns = `id::text, title, description, price_cents, platform, genre, COALESCE(cover_image, ''), stock, rating, reviews, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Game, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	where := "TRUE"
	args := []interface{}{}
	if f.Genre != "" {
		args = append(args, f.Genre)
		where += fmt.Sprintf(" AND genre = $%d", len(args))
	}
	if f.Platform != "" {
		args = append(args, f.Platform)
		where += fmt.Sprintf(" AND platform = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, f.Search)
		where += fmt.Sprintf(" AND to_tsvector('english', title || ' ' || description) @@ plainto_tsquery('english', $%d)", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM games WHERE "+where, args...).Scan(&total); err != nil {
		r.logger.Printf("game repo: count error=%v", err)
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	q := fmt.Sprintf(`
SELECT %s
FROM games
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, gameColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("game repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *g)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("game repo: list rows error=%v", err)
		return nil, 0, err
	}
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	q := fmt.Sprintf(`SELECT %s FROM games WHERE id = $1`, gameColumns)
	g, err := scanGame(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("game repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return g, nil
}

func (r *postgresRepo) Create(ctx context.Context, g domain.Game) (*domain.Game, error) {
	q := fmt.Sprintf(`
INSERT INTO games (title, description, price_cents, platform, genre, cover_image, stock, rating, reviews)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, '[]'::jsonb))
RETURNING %s
`, gameColumns)
	created, err := scanGame(r.pool.QueryRow(ctx, q,
		g.Title, g.Description, g.PriceCents, g.Platform, g.Genre, g.CoverImage, g.Stock, g.Rating, g.Reviews,
	))
	if err != nil {
		r.logger.Printf("game repo: create title=%q error=%v", g.Title, err)
		return nil, err
	}
	r.logger.Printf("game repo: created id=%s title=%q", created.ID, created.Title)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, g domain.Game) (*domain.Game, error) {
	q := fmt.Sprintf(`
UPDATE games
SET title = $2,
    description = $3,
    price_cents = $4,
    platform = $5,
    genre = $6,
    cover_image = $7,
    stock = $8,
    rating = $9,
    reviews = COALESCE($10, reviews),
    updated_at = now()
WHERE id = $1
RETURNING %s
`, gameColumns)
	updated, err := scanGame(r.pool.QueryRow(ctx, q,
		id, g.Title, g.Description, g.PriceCents, g.Platform, g.Genre, g.CoverImage, g.Stock, g.Rating, g.Reviews,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("game repo: update id=%s error=%v", id, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("game repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Upsert(ctx context.Context, g domain.Game) (*domain.Game, error) {
	// Title is the natural key for seed/import data.
	q := fmt.Sprintf(`
INSERT INTO games (title, description, price_cents, platform, genre, cover_image, stock, rating)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (title) DO UPDATE SET
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    platform = EXCLUDED.platform,
    genre = EXCLUDED.genre,
    cover_image = EXCLUDED.cover_image,
    stock = EXCLUDED.stock,
    rating = EXCLUDED.rating,
    updated_at = now()
RETURNING %s
`, gameColumns)
	res, err := scanGame(r.pool.QueryRow(ctx, q,
		g.Title, g.Description, g.PriceCents, g.Platform, g.Genre, g.CoverImage, g.Stock, g.Rating,
	))
	if err != nil {
		r.logger.Printf("game repo: upsert title=%q error=%v", g.Title, err)
		return nil, err
	}
	return res, nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	if err := row.Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.PriceCents,
		&g.Platform,
		&g.Genre,
		&g.CoverImage,
		&g.Stock,
		&g.Rating,
		&g.Reviews,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}
