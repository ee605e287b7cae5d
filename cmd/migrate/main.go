package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const migrationsDir = "./database/migrations"

// Applies every .sql file under database/migrations in lexical order.
// Statements are written to be idempotent (CREATE TABLE IF NOT EXISTS),
// so re-running against an existing database is safe.
func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close(ctx)

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		log.Fatal("Failed to read migrations:", err)
	}

	var files []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".sql" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sql, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatal("Failed to read file:", err)
		}
		if _, err := conn.Exec(ctx, string(sql)); err != nil {
			log.Fatalf("Failed to execute %s: %v", name, err)
		}
		log.Printf("Applied %s", name)
	}

	log.Println("All migrations completed")
}
