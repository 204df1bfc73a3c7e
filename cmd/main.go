package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Devanshi-Mehta/FitFuel/config"
	"github.com/Devanshi-Mehta/FitFuel/routes"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	r := routes.SetupRouter(cfg, logger)

	logger.Info("starting server", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
