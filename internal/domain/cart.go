package domain

import "time"

// Cart is the per-user pre-checkout selection. TotalCents is derived from
// live game prices and is never accepted from clients.
type Cart struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Items      []CartItem `json:"items"`
}

// CartItem references a game by id. Game is populated on reads.
type CartItem struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cartId"`
	GameID    string    `json:"gameId"`
	Quantity  int       `json:"quantity"`
	Game      *Game     `json:"game,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
