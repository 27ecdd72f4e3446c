package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/app"
	"github.com/comitanigiacomo/fitjournal-engine/internal/config"

	adapterHTTP "github.com/comitanigiacomo/fitjournal-engine/internal/adapters/handler/http"
)

// @title FitJournal API
// @version 1.0
// @description Workout and nutrition journal with weekly summaries and barcode prefill.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}
	if err := cfg.RequireJWTSecret(); err != nil {
		log.Fatalf("Critical: %v", err)
	}

	log.Printf("Connecting to %s store...", cfg.DBDriver)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	a, err := app.New(bootCtx, cfg)
	cancelBoot()
	if err != nil {
		log.Fatalf("Critical: failed to start: %v", err)
	}
	defer a.Close()

	log.Println("Store ready.")

	router := NewServerRouter(a, startTime)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("FitJournal Engine running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

func NewServerRouter(a *app.App, startTime time.Time) http.Handler {
	deps := adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(a.Auth, a.Tokens),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(a.Workout),
		FoodHandler:      adapterHTTP.NewFoodHandler(a.Food, a.Lookup),
		StatsHandler:     adapterHTTP.NewStatsHandler(a.Aggregator),
		TokenService:     a.Tokens,
		Store:            a.Store,
		RateLimit:        a.Config.RateLimit,
		BarcodeRateLimit: a.Config.BarcodeLimit,
		RateWindow:       a.Config.RateWindow,
		StartTime:        startTime,
		AllowOrigins:     a.Config.AllowedOrigins,
	}
	if a.Redis != nil {
		deps.Redis = a.Redis
	}
	return adapterHTTP.NewRouter(deps)
}
