package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/config"
	"github.com/Sonaa-Moda/sonaa-storefront-backend/store"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the Postgres store and loads the catalog fixtures.
// Usage: go run cmd/seed/main.go
// Only needed for STORE_BACKEND=postgres; the memory backend seeds
// itself at startup.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SONAA MODA - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to store database")

	if err := store.Migrate(); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	pg := store.NewPostgres()
	defer pg.Close()

	if err := pg.SeedProducts(context.Background()); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✓ Seeded %d products and %d promo codes", len(store.Fixtures()), len(store.PromoFixtures()))
	fmt.Println()
	fmt.Println("✅ Done")
}
