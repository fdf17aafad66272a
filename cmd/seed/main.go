package main

import (
	"context"
	"log"

	"edutech/internal/config"
	"edutech/internal/db"
	"edutech/internal/repository"
	"edutech/internal/seed"
	"edutech/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()
	if cfg.StoreDriver == config.StoreMemory {
		log.Fatalf("STORE_DRIVER=memory has nothing to seed; use sqlite or mysql")
	}

	// Connect to database
	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Printf("Connected to %s database", cfg.StoreDriver)

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repos := repository.NewGorm(gormDB)
	ctx := context.Background()

	log.Println("Seeding catalog into database...")
	res, err := seed.Load(ctx, repos)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	if cfg.AdminUsername != "" {
		users := service.NewUserService(repos.Users)
		_, created, err := users.EnsureUser(ctx, cfg.AdminUsername, cfg.AdminPassword)
		switch {
		case err != nil:
			log.Fatalf("Failed to ensure admin user: %v", err)
		case created:
			log.Printf("Admin user %q created", cfg.AdminUsername)
		default:
			if _, err := users.CheckPassword(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
				log.Printf("Warning: admin user %q exists with a different password", cfg.AdminUsername)
			}
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New records created: %d", res.Created)
	log.Printf("  - Existing records skipped: %d", res.Skipped)
	log.Printf("  - Total records processed: %d", res.Created+res.Skipped)
}
