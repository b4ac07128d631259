package main

import (
	"context"
	"log"
	"os"
	"time"

	"floatchat-be/internal/config"
	"floatchat-be/internal/model"
	"floatchat-be/internal/repository/implementation"
	"floatchat-be/pkg/database"
)

// migrate prepares a development environment: the argo_profiles table
// (normally created by the ingestion pipeline) and the chat collection indexes.
// Pass -skip-postgres when pointing at a shared Argo database.
func main() {
	cfg := config.Load()

	skipPostgres := len(os.Args) > 1 && os.Args[1] == "-skip-postgres"

	if !skipPostgres {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
		if err != nil {
			log.Fatal("Error: Failed to connect to database:", err)
		}

		log.Println("Step 1: AutoMigrate argo_profiles...")
		if err := db.AutoMigrate(&model.ArgoProfile{}); err != nil {
			log.Fatalf("Error: AutoMigrate failed: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal("Error: Failed to connect to MongoDB:", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	log.Println("Step 2: Ensuring chat indexes...")
	if err := implementation.EnsureChatSessionIndexes(ctx, client.Database(cfg.Mongo.Database), cfg.Mongo.Collection); err != nil {
		log.Fatalf("Error: Failed to create indexes: %v", err)
	}

	log.Println("Migration finished")
}
