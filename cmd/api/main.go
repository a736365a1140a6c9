package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/dhima/auto-run-ac/internal/api"
	"github.com/dhima/auto-run-ac/pkg/config"
)

// @title Auto Run AC API
// @version 1.0
// @description Trigger management for an automatically switched air conditioner.
// @description
// @description - **Default triggers** fire every day at a time of day.
// @description - **Date triggers** fire once at an instant.
// @description - **Cache** holds a snapshot of the default triggers for evaluators.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	srv, err := api.NewServer(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("start api server: %v", err)
	}

	if err := srv.Serve(); err != nil {
		log.Fatalf("api server stopped: %v", err)
	}
}
