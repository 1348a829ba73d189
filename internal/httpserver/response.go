package httpserver

import (
	"errors"
	"log"
	"net/http"
	"time"

	"gamestore/internal/domain"
	authsvc "gamestore/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// Every response uses the {status, data?, message?} envelope.

func respondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// respondServiceError maps business errors to HTTP statuses. Anything
// unrecognized is a store/internal failure: logged, and returned as a
// generic 500 so internals never leak to clients.
func respondServiceError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, "cart is empty")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusBadRequest, "duplicate field value entered")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	default:
		logger.Printf("internal error: %v", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// Prices are stored in cents and exposed as decimal amounts.
func amount(cents int64) float64 {
	return float64(cents) / 100
}

type gameResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Platform    string          `json:"platform"`
	Genre       string          `json:"genre"`
	CoverImage  string          `json:"coverImage,omitempty"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Reviews     []domain.Review `json:"reviews"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toGameResponse(g domain.Game) gameResponse {
	reviews := g.Reviews
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return gameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Price:       amount(g.PriceCents),
		Platform:    g.Platform,
		Genre:       g.Genre,
		CoverImage:  g.CoverImage,
		Stock:       g.Stock,
		Rating:      g.Rating,
		Reviews:     reviews,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type cartItemResponse struct {
	ID       string        `json:"id"`
	Game     *gameResponse `json:"game,omitempty"`
	Quantity int           `json:"quantity"`
	Subtotal float64       `json:"subtotal"`
}

type cartResponse struct {
	ID    string             `json:"id"`
	Items []cartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		out := cartItemResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
		}
		if item.Game != nil {
			g := toGameResponse(*item.Game)
			out.Game = &g
			out.Subtotal = amount(item.Game.PriceCents * int64(item.Quantity))
		}
		items = append(items, out)
	}
	return cartResponse{
		ID:    cart.ID,
		Items: items,
		Total: amount(cart.TotalCents),
	}
}

type orderItemResponse struct {
	ID       string        `json:"id"`
	GameID   string        `json:"gameId"`
	Game     *gameResponse `json:"game,omitempty"`
	Quantity int           `json:"quantity"`
	Price    float64       `json:"price"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Items     []orderItemResponse `json:"items"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		out := orderItemResponse{
			ID:       item.ID,
			GameID:   item.GameID,
			Quantity: item.Quantity,
			Price:    amount(item.PriceCents),
		}
		if item.Game != nil {
			g := toGameResponse(*item.Game)
			out.Game = &g
		}
		items = append(items, out)
	}
	return orderResponse{
		ID:        order.ID,
		Items:     items,
		Total:     amount(order.TotalCents),
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
