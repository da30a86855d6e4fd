package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/checkout"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/config"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/db"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/events"
	httpapi "github.com/kavia-common/cafe-pos/pos-service-go/internal/http"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/menu"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/session"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[pos-service] ", log.LstdFlags|log.Lshortfile)

	if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database := db.MustOpen(cfg.DatabaseDSN, logger)
	defer database.Close()

	menuRepo := menu.NewRepository(database)
	orderRepo := order.NewRepository(database)

	// Session cache is best-effort: fall back to process memory when Redis
	// is not configured or unreachable instead of refusing to start.
	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Printf("redis unavailable, carts cached in memory only: %v", err)
		} else {
			sessions = session.NewRedisStore(client, logger)
		}
	}

	var publisher checkout.Publisher = events.NoopPublisher{}
	messagingOn := false
	if cfg.RabbitURL != "" {
		conn, err := amqp.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("connect rabbitmq: %v", err)
		}
		defer conn.Close()

		rabbitPublisher, err := events.NewRabbitPublisher(conn)
		if err != nil {
			logger.Fatalf("create order events publisher: %v", err)
		}
		defer rabbitPublisher.Close()

		publisher = rabbitPublisher
		messagingOn = true
	}

	carts := cart.NewManager(cfg.TaxRateTenthBps, sessions)
	checkoutSvc := checkout.NewService(orderRepo, publisher, logger)

	router := httpapi.NewRouter(
		httpapi.NewCartHandler(carts),
		httpapi.NewMenuHandler(menuRepo),
		httpapi.NewCheckoutHandler(carts, checkoutSvc),
		httpapi.NewSalesHandler(orderRepo),
		httpapi.NewDiagHandler(database, sessions, messagingOn, cfg.TaxRateTenthBps),
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("pos-service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
