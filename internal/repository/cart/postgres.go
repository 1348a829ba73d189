package cart

import (
	"context"
	"errors"

	"gamestore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text
`
	var cartID string
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&cartID); err != nil {
		return nil, err
	}
	return r.fetchCart(ctx, cartID)
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cartID string
	err := r.pool.QueryRow(ctx, `SELECT id::text FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.fetchCart(ctx, cartID)
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID, gameID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Quantities merge when the game is already in the cart.
	if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (cart_id, game_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, game_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`, cartID, gameID, quantity); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = $1
WHERE id = $2 AND cart_id = $3
`, quantity, itemID, cartID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, cartID, itemID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE id = $1 AND cart_id = $2
`, itemID, cartID); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) Clear(ctx context.Context, cartID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) fetchCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, created_at, updated_at
FROM carts
WHERE id = $1
`, cartID).Scan(&cart.ID, &cart.UserID, &cart.TotalCents, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT ci.id::text, ci.cart_id::text, ci.game_id::text, ci.quantity, ci.created_at,
       g.id::text, g.title, g.description, g.price_cents, g.platform, g.genre,
       COALESCE(g.cover_image, ''), g.stock, g.rating, g.created_at, g.updated_at
FROM cart_items ci
JOIN games g ON g.id = ci.game_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		var g domain.Game
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.GameID,
			&item.Quantity,
			&item.CreatedAt,
			&g.ID,
			&g.Title,
			&g.Description,
			&g.PriceCents,
			&g.Platform,
			&g.Genre,
			&g.CoverImage,
			&g.Stock,
			&g.Rating,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Game = &g
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

// updateCartTotal recomputes the derived total from live game prices.
func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID string) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_cents = COALESCE((
	SELECT SUM(g.price_cents * ci.quantity)
	FROM cart_items ci
	JOIN games g ON g.id = ci.game_id
	WHERE ci.cart_id = $1
), 0),
    updated_at = now()
WHERE id = $1
`, cartID)
	return err
}
