package main

import (
	"context"
	"log"
	"os"
)

func main() {
	cfg := LoadConfig()

	// 1) DB
	db, err := OpenDB(cfg)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := NewStore(db, cfg.QueryTimeout)
	ctx := context.Background()

	// 2) Seed (if empty)
	seeded, err := store.HasCategories(ctx)
	if err != nil {
		log.Fatalf("check seed state: %v", err)
	}
	if !seeded {
		categories := DefaultSeed()
		if _, statErr := os.Stat(cfg.SeedFile); statErr == nil {
			categories, err = LoadSeedFile(cfg.SeedFile)
			if err != nil {
				log.Fatalf("seed file %s: %v", cfg.SeedFile, err)
			}
			log.Printf("Seeding from %s", cfg.SeedFile)
		} else {
			log.Printf("No seed file at %s; using built-in seed", cfg.SeedFile)
		}
		if err := store.Seed(ctx, categories); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// 3) Interactive session
	app := NewApp(store, cfg, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
