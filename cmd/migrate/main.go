// CLI tool to apply pending record-store migrations to BMI_DB_PATH.
// Checks the migrations table to skip already-applied files.
// Each migration + record insert runs in a single transaction.
// Usage: go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"

	"lg/bmi-tracker/internal/config"
	"lg/bmi-tracker/internal/store"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	db, err := store.Connect(cfg.Store.Path, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open record store: %v\n", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	results, err := store.Migrate(context.Background(), db)
	for _, r := range results {
		if r.Applied {
			fmt.Printf("  applied: %s\n", r.Name)
		} else {
			fmt.Printf("  skip: %s\n", r.Name)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ran := 0
	for _, r := range results {
		if r.Applied {
			ran++
		}
	}
	if ran == 0 {
		fmt.Println("No pending migrations.")
	} else {
		fmt.Printf("\n%d migration(s) applied.\n", ran)
	}
}
