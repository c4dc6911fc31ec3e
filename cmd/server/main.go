package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"election-board/internal/api"
	"election-board/internal/api/handlers"
	"election-board/internal/query"
	"election-board/internal/simulation"
	"election-board/internal/store"
	"election-board/pkg/config"
	"election-board/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs/server.yaml")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.NewLoggerWithOptions(cfg.Logging.Level, cfg.Logging.File, logger.Options{
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()
	log.SetFormatter(cfg.Logging.Format)

	gin.SetMode(cfg.Server.Mode)

	st := store.New(cfg.Simulation.Seed)
	log.Info("World state seeded with seed %d", cfg.Simulation.Seed)

	qe := query.New(st)

	src := store.NewLiveSource()
	if cfg.Simulation.Deterministic {
		src = store.NewLCG(cfg.Simulation.Seed)
	}
	sim := simulation.NewEngine(st, src, cfg.Simulation.Interval, log)

	hub := handlers.NewHub(log)
	sim.SetTickCallback(func(updates []store.CentreUpdate) {
		hub.Broadcast("tick", updates)
	})

	services := api.NewServices(st, qe, sim, hub, log, cfg)

	router := gin.New()
	api.SetupRoutes(router, services, hub)

	if cfg.Simulation.Enabled {
		if err := sim.Start(); err != nil {
			log.Error("Failed to start simulation: %v", err)
		}
	}

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting election results server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	sim.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown: %v", err)
	}
}
