package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"partypilot/config"
	"partypilot/di"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	container := di.NewContainer(ctx, cfg)
	defer container.PostgresPool.Close()

	if err := container.VenueCacheWarmer.SeedIfEmpty(ctx); err != nil {
		log.Printf("venue seeding failed: %v", err)
	}

	fmt.Println("warming venue pools!")
	if err := container.VenueCacheWarmer.WarmAllCities(ctx); err != nil {
		log.Printf("initial cache warm failed: %v", err)
	}

	fmt.Println("starting periodic warm job!")
	container.VenueCacheWarmer.StartPeriodicJob(ctx,
		config.VENUE_CACHE_WARMER_SCHEDULE_MINUTES*time.Minute)

	fmt.Println("starting server!")
	container.PartyPilotHttpServer.Start()
}
