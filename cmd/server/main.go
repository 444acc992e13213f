// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/cardfelt/uno/internal/auth"
	"github.com/cardfelt/uno/internal/cache"
	"github.com/cardfelt/uno/internal/database"
	"github.com/cardfelt/uno/internal/handlers"
	"github.com/cardfelt/uno/internal/ledger"
	"github.com/cardfelt/uno/internal/middleware"
)

func main() {
	auth.Init()
	database.ConnectDB()

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	if err := cache.ConnectRedis(); err != nil {
		// The historian feed is best-effort; matches run without it.
		logger.Warnf("redis unavailable, action history disabled: %v", err)
	}

	mux := http.NewServeMux()

	// user endpoints
	mux.HandleFunc("/user/create", handlers.CreateUserHandler)
	mux.HandleFunc("/user/login", handlers.LoginHandler)
	mux.HandleFunc("/user/balance", handlers.BalanceHandler)

	// match server
	srv := handlers.NewMatchServer(ledger.NewPostgres(), logger)

	mux.Handle("/match/create", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.CreateMatchHandler(srv),
	)))
	mux.Handle("/match/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.MatchWSHandler(logger, srv),
	)))

	// Reap matches abandoned by inactivity.
	go srv.RunIdleReaper(context.Background(), time.Minute, 10*time.Minute)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
