// Command seeder forces the sample data into the configured database,
// creating the schema first if needed. Unlike the startup seeding in the
// tracker itself, it runs whether or not the customer table is empty;
// INSERT OR IGNORE keeps it idempotent.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"customer-tracker/internal/config"
	"customer-tracker/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on OS environment variables")
	}
	cfg := config.Load()
	ctx := context.Background()

	sqlDB, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Error opening DB: %v", err)
	}
	defer sqlDB.Close()

	if err := db.Bootstrap(ctx, sqlDB, os.Stdout, true); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	if err := db.Seed(ctx, sqlDB, os.Stdout); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	fmt.Println("Database seeding completed successfully!")
}
