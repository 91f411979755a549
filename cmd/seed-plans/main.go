package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/audiomint/backend/config"
	"github.com/audiomint/backend/pkg/database"
	"github.com/audiomint/backend/pkg/logger"
	"github.com/audiomint/backend/pkg/plans"
	"github.com/audiomint/backend/pkg/secrets"
)

func main() {
	migrate := flag.Bool("migrate", true, "apply schema migrations before seeding")
	flag.Parse()

	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	secretStore, err := secrets.NewManager(secrets.ConfigFromEnv())
	if err != nil {
		log.Fatalf("❌ Failed to initialize secrets manager: %v", err)
	}
	if err := secrets.Apply(ctx, secretStore, cfg); err != nil {
		log.Fatalf("❌ Failed to load secrets: %v", err)
	}

	db, err := database.NewClient(ctx, database.Options{
		URL:         cfg.DatabaseURL,
		AutoMigrate: *migrate,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	catalog := plans.NewCatalog(db.Ent, time.Minute, appLog, nil)
	created, err := catalog.Seed(ctx, plans.DefaultDefinitions(plans.PriceIDs{
		"pro":        cfg.StripePricePro,
		"enterprise": cfg.StripePriceEnterprise,
	}))
	if err != nil {
		log.Fatalf("❌ Failed to seed plans: %v", err)
	}

	if len(created) == 0 {
		log.Println("✅ All plans already exist")
		return
	}
	log.Printf("✅ Created %d plans: %v", len(created), created)
}
