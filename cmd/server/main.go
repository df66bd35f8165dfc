package main

// @title           Books API
// @version         1.0
// @description     CRUD API for book records backed by MongoDB.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/config"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/db"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/server"
)

const appVersion = "1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	store, err := db.Open(cfg)
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		store = repository.NewUnavailableBookRepository(err)
	} else {
		go db.Probe(context.Background(), store)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.NewRouter(store, startTime, appVersion),
	}

	err = server.Run(ctx, srv, cfg.ShutdownTimeout, func(ctx context.Context) {
		if err := store.Close(ctx); err != nil {
			log.Printf("close database: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("server: %v", err)
	}
}
