package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"floatchat-be/internal/bootstrap"
	"floatchat-be/internal/config"
	"floatchat-be/internal/server"
	"floatchat-be/internal/tracer"
	"floatchat-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	isProd := cfg.App.Environment == "production"

	// Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing, cfg.App.Environment)
	defer func() { _ = shutdownTracer(context.Background()) }()

	// 2. Initialize Databases
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, isProd)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongoClient, err := database.NewMongoClient(ctx, cfg.Mongo.URI)
	cancel()
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, mongoClient.Database(cfg.Mongo.Database), cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap: %v", err)
	}
	defer container.Close()

	// 4. Start Background Services
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if err := container.ConsumerService.Consume(consumerCtx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
