package main

import (
	"context"
	"log"

	"juntaplay-be/internal/bootstrap"
	"juntaplay-be/internal/config"
	"juntaplay-be/internal/server"
	"juntaplay-be/pkg/database"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: starting order watcher...")
		if err := container.OrderWatcherService.Consume(context.Background()); err != nil {
			log.Printf("Background order watcher error: %v", err)
		}
	}()

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
