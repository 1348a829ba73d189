package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gamestore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func (r *postgresRepo) CreateFromCart(ctx context.Context, userID string, items []domain.CartItem) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	type frozenItem struct {
		gameID     string
		quantity   int
		priceCents int64
	}

	var (
		frozen     []frozenItem
		totalCents int64
	)
	for _, item := range items {
		// Decrement only succeeds when enough stock remains. Price is read in
		// the same statement so the snapshot cannot be stale.
		var priceCents int64
		err := tx.QueryRow(ctx, `
UPDATE games
SET stock = stock - $2, updated_at = now()
WHERE id = $1 AND stock >= $2
RETURNING price_cents
`, item.GameID, item.Quantity).Scan(&priceCents)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, r.stockFailure(ctx, tx, item.GameID)
			}
			return nil, err
		}
		frozen = append(frozen, frozenItem{gameID: item.GameID, quantity: item.Quantity, priceCents: priceCents})
		totalCents += priceCents * int64(item.Quantity)
	}

	var orderID string
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents, status)
VALUES ($1, $2, 'pending')
RETURNING id::text
`, userID, totalCents).Scan(&orderID); err != nil {
		return nil, err
	}

	for _, f := range frozen {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, game_id, quantity, price_cents)
VALUES ($1, $2, $3, $4)
`, orderID, f.gameID, f.quantity, f.priceCents); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE cart_id = (SELECT id FROM carts WHERE user_id = $1)
`, userID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
UPDATE carts SET total_cents = 0, updated_at = now() WHERE user_id = $1
`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.Printf("order repo: created id=%s user=%s total_cents=%d items=%d", orderID, userID, totalCents, len(frozen))
	return r.fetchOrder(ctx, orderID)
}

// stockFailure turns a zero-row conditional decrement into the right sentinel:
// the game is either gone or short on stock.
func (r *postgresRepo) stockFailure(ctx context.Context, tx pgx.Tx, gameID string) error {
	var title string
	err := tx.QueryRow(ctx, `SELECT title FROM games WHERE id = $1`, gameID).Scan(&title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: game %s", domain.ErrNotFound, gameID)
		}
		return err
	}
	return fmt.Errorf("%w: not enough stock for %s", domain.ErrInsufficientStock, title)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, user_id::text, total_cents, status, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.fetchItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	// Ownership is part of the lookup predicate, not a separate check.
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, status, created_at
FROM orders
WHERE id = $1 AND user_id = $2
`, orderID, userID).Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.fetchOrder(ctx, orderID)
}

func (r *postgresRepo) fetchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, status, created_at
FROM orders
WHERE id = $1
`, orderID).Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	// Games are weak references; a deleted game leaves the snapshot intact.
	rows, err := r.pool.Query(ctx, `
SELECT oi.id::text, oi.order_id::text, oi.game_id::text, oi.quantity, oi.price_cents,
       g.id::text, g.title, g.description, g.price_cents, g.platform, g.genre,
       g.cover_image, g.stock, g.rating, g.created_at, g.updated_at
FROM order_items oi
LEFT JOIN games g ON g.id = oi.game_id
WHERE oi.order_id = $1
ORDER BY oi.created_at ASC
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			item       domain.OrderItem
			gameID     *string
			title      *string
			desc       *string
			priceCents *int64
			platform   *string
			genre      *string
			coverImage *string
			stock      *int
			rating     *float64
			createdAt  *time.Time
			updatedAt  *time.Time
		)
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.GameID,
			&item.Quantity,
			&item.PriceCents,
			&gameID,
			&title,
			&desc,
			&priceCents,
			&platform,
			&genre,
			&coverImage,
			&stock,
			&rating,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		if gameID != nil {
			item.Game = &domain.Game{
				ID:          *gameID,
				Title:       *title,
				Description: *desc,
				PriceCents:  *priceCents,
				Platform:    *platform,
				Genre:       *genre,
				CoverImage:  *coverImage,
				Stock:       *stock,
				Rating:      *rating,
				CreatedAt:   *createdAt,
				UpdatedAt:   *updatedAt,
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
