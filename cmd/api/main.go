package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/applenx/shop-api/internal/helpers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system env vars")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	app := newApplication()
	if app.config.jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := helpers.OpenDB(helpers.DBConfig{
		Host:     app.config.db.host,
		Port:     app.config.db.port,
		User:     app.config.db.user,
		Password: app.config.db.password,
		Name:     app.config.db.name,
	}, app.logger)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	defer db.Close()
	app.wire(db)

	server := &http.Server{
		Addr:         ":" + app.config.port,
		Handler:      app.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Server listening on :%s (env=%s)", app.config.port, app.config.env)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}

	case sig := <-quit:
		log.Printf("[shutdown] signal received: %v — beginning graceful shutdown", sig)
		ctx, cancel := context.WithTimeout(context.Background(), app.config.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("[shutdown] error: %v", err)
		}
	}
}
