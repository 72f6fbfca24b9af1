package main

import (
	"context"
	"log"

	"hardware-advisor/internal/bootstrap"
	"hardware-advisor/internal/shared/config"
	"hardware-advisor/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartModelReloader(ctx)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
