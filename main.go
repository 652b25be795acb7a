package main

import (
	"context"
	"log"
	"time"

	"lapangin-web/config"
	"lapangin-web/di"
)

func main() {
	cfg := config.Load()
	config.ParseArgs().Apply(cfg)

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize: %v", err)
	}

	// background jobs stop once the server has shut down
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.SnapshotRefreshMinutes > 0 {
		log.Println("[MAIN] Refreshing venue snapshot")
		if err := container.VenuesRefresherService.RefreshSnapshot(ctx); err != nil {
			log.Printf("[MAIN] Initial snapshot refresh failed: %v", err)
		}
		container.VenuesRefresherService.StartPeriodicJob(ctx, time.Duration(cfg.SnapshotRefreshMinutes)*time.Minute)
	} else {
		log.Println("[MAIN] Snapshot refresher disabled")
	}
	container.ViewStore.StartSweeper(ctx, max(cfg.ViewTTL/4, time.Minute))

	container.LapanginHttpServer.Start(ctx)
}
