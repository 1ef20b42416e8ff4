// Command main runs the database seeder for Mooduck.
package main

import (
	"flag"
	"log"

	"mooduck/internal/config"
	"mooduck/internal/database"
	"mooduck/internal/seed"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numBoards := flag.Int("moodboards", 200, "Number of moodboards to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Apply a named seeder preset (tiny, demo, mega)")
	sqlitePath := flag.String("sqlite", "", "Seed a local SQLite file instead of Postgres")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding")
	flag.Parse()

	log.Println("Mooduck Database Seeder")
	log.Println("=======================")

	db, err := connect(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeder := seed.NewSeeder(db, seed.Options{SkipBcrypt: *skipBcrypt, BatchSize: 100})

	if *shouldClean && *sqlitePath == "" {
		if err := seeder.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *preset != "" {
		if err := seeder.ApplyPreset(*preset); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
	} else {
		users, err := seeder.SeedUsers(*numUsers)
		if err != nil {
			log.Fatalf("User seeding failed: %v", err)
		}
		boards, err := seeder.SeedMoodboards(users, *numBoards)
		if err != nil {
			log.Fatalf("Moodboard seeding failed: %v", err)
		}
		if err := seeder.SeedEngagement(users, boards); err != nil {
			log.Fatalf("Engagement seeding failed: %v", err)
		}
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}

func connect(sqlitePath string) (*gorm.DB, error) {
	if sqlitePath != "" {
		db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
			return nil, err
		}
		return db, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return database.Connect(cfg)
}
