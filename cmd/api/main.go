package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gamestore/internal/config"
	"gamestore/internal/db"
	"gamestore/internal/events"
	"gamestore/internal/httpserver"
	cartrepo "gamestore/internal/repository/cart"
	gamerepo "gamestore/internal/repository/game"
	orderrepo "gamestore/internal/repository/order"
	userrepo "gamestore/internal/repository/user"
	authsvc "gamestore/internal/service/auth"
	cartsvc "gamestore/internal/service/cart"
	gamesvc "gamestore/internal/service/game"
	ordersvc "gamestore/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic, logger)
	defer publisher.Close()

	gameRepo := gamerepo.NewPostgres(dbpool, logger)
	gameService := gamesvc.New(gameRepo)
	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, gameRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, cartRepo, publisher, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:  authService,
		GameSvc:  gameService,
		CartSvc:  cartService,
		OrderSvc: orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
