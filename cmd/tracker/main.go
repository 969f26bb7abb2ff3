// Command tracker is the interactive customer manager: a menu-driven
// console session over a single embedded database file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"customer-tracker/internal/config"
	"customer-tracker/internal/console"
	"customer-tracker/internal/controller"
	"customer-tracker/internal/db"
	"customer-tracker/internal/model"
	"customer-tracker/internal/repository"
	"customer-tracker/internal/service"
	"customer-tracker/internal/telemetry"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on OS environment variables")
	}
	cfg := config.Load()
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Println("Telemetry setup failed:", err)
	}
	defer shutdown(ctx)

	// Opening the database is the one failure nothing can recover from.
	sqlDB, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Error opening DB: %v", err)
	}
	fmt.Println("Database opened successfully.")

	if err := db.Bootstrap(ctx, sqlDB, os.Stdout, cfg.SkipSeed); err != nil {
		log.Println("Database bootstrap incomplete:", err)
	}

	cons := console.New(os.Stdin, os.Stdout)
	runner := &repository.StatementRunner{DB: sqlDB, Out: os.Stdout}

	svc := &service.TrackerService{
		Customers: &repository.CustomerRepository{DB: sqlDB},
		Addresses: &repository.AddressRepository{DB: sqlDB},
		Runner:    runner,
		Console:   cons,
		Validate:  model.NewValidator(),
	}

	menu := &controller.MenuController{Service: svc, Console: cons}
	menu.Run(ctx)

	db.Close(sqlDB)
}
