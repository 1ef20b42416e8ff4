// Command migrate runs schema operations for the backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"mooduck/internal/config"
	"mooduck/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate/main.go <up|status|down> [version]")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	ctx := context.Background()
	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "up":
		if err := database.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
		log.Println("sql migrations applied")
	case "status":
		applied, err := database.NewMigrationStore(db).GetAppliedMigrations(ctx)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		appliedSet := make(map[int]bool, len(applied))
		for _, v := range applied {
			appliedSet[v] = true
		}
		for _, m := range database.GetMigrations() {
			state := "pending"
			if appliedSet[m.Version] {
				state = "applied"
			}
			fmt.Printf("%-8s %s\n", state, m.String())
		}
	case "down":
		if flag.NArg() < 2 {
			return usage()
		}
		version, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", flag.Arg(1), err)
		}
		if err := database.RollbackMigration(ctx, db, version); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		log.Printf("migration %d rolled back", version)
	default:
		return usage()
	}
	return nil
}
