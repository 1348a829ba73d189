package domain

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status. Any status may
// transition to any other; there is no transition graph.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an immutable record of a checkout. Item prices are frozen at
// checkout time and never change with later catalog updates.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	TotalCents int64       `json:"totalCents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	GameID     string `json:"gameId"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
	Game       *Game  `json:"game,omitempty"`
}
