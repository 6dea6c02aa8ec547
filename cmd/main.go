package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pixel_bistro/docs"
	"pixel_bistro/internal/audio"
	"pixel_bistro/internal/catalog"
	"pixel_bistro/internal/config"
	"pixel_bistro/internal/engine"
	"pixel_bistro/internal/handlers"
	"pixel_bistro/internal/logger"
	"pixel_bistro/internal/network"
	"pixel_bistro/internal/repository"
	"pixel_bistro/internal/repository/db"
	"pixel_bistro/internal/server"
	"pixel_bistro/internal/service"

	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// @title                       Pixel Bistro API
// @version                     1.0
// @description                 Kitchen simulation: solo and co-op sessions, ranking and journal.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	player := audio.NewPlayer(log.Named("audio"))
	eng := engine.New(cfg.Game, catalog.Default(), engine.WithCueSink(player))
	link := network.NewPeerLink(network.Options{
		HostURL: cfg.Peer.HostURL,
		Rate:    rate.Limit(cfg.Peer.ActionRate),
		Burst:   cfg.Peer.ActionBurst,
		Log:     log.Named("peer"),
	})
	services := service.NewService(repos, service.Deps{
		Engine:     eng,
		Link:       link,
		Audio:      player,
		Log:        log.Named("session"),
		Chef:       cfg.ChefName,
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log.Named("http"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Simulator.Run(ctx, cfg.Game.TickRate)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("bistro_open", "port", cfg.Port, "chef", cfg.ChefName, "db", cfg.DBPath)

	waitForShutdown(cancel, srv, link, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, link *network.PeerLink, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the kitchen clock and drop any co-op partner
	cancel()
	link.Cleanup()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
