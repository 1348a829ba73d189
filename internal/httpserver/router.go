package httpserver

import (
	"context"
	"errors"
	"log"

	"gamestore/internal/domain"
	gamerepo "gamestore/internal/repository/game"
	authsvc "gamestore/internal/service/auth"
	gamesvc "gamestore/internal/service/game"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router needs.
type Deps struct {
	AuthSvc  authService
	GameSvc  gameService
	CartSvc  cartService
	OrderSvc orderService
}

type authService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
}

type gameService interface {
	List(ctx context.Context, f gamerepo.ListFilter) ([]domain.Game, int, error)
	Get(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, in gamesvc.Input) (*domain.Game, error)
	Update(ctx context.Context, id string, in gamesvc.Input) (*domain.Game, error)
	Delete(ctx context.Context, id string) error
}

type cartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Add(ctx context.Context, userID, gameID string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error)
	Remove(ctx context.Context, userID, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
}

type orderService interface {
	Create(ctx context.Context, userID string) (*domain.Order, error)
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, userID, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.GameSvc == nil || deps.CartSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	authH := &authHandler{svc: deps.AuthSvc, logger: logger}
	api.POST("/auth/register", authH.register)
	api.POST("/auth/login", authH.login)
	api.GET("/auth/profile", authRequired(deps.AuthSvc), authH.profile)

	gameH := &gameHandler{svc: deps.GameSvc, logger: logger}
	games := api.Group("/games")
	games.GET("", gameH.list)
	games.GET("/:id", gameH.get)
	games.POST("", authRequired(deps.AuthSvc), adminRequired(), gameH.create)
	games.PUT("/:id", authRequired(deps.AuthSvc), adminRequired(), gameH.update)
	games.DELETE("/:id", authRequired(deps.AuthSvc), adminRequired(), gameH.delete)

	cartH := &cartHandler{svc: deps.CartSvc, logger: logger}
	carts := api.Group("/cart", authRequired(deps.AuthSvc))
	carts.GET("", cartH.get)
	carts.POST("", cartH.add)
	carts.PUT("/:itemId", cartH.updateItem)
	carts.DELETE("/:itemId", cartH.removeItem)
	carts.DELETE("", cartH.clear)

	orderH := &orderHandler{svc: deps.OrderSvc, logger: logger}
	orders := api.Group("/orders", authRequired(deps.AuthSvc))
	orders.GET("", orderH.list)
	orders.GET("/:id", orderH.get)
	orders.POST("", orderH.create)
	orders.PUT("/:id/status", adminRequired(), orderH.updateStatus)

	return router, nil
}
