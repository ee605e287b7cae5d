package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lovgol/auth"
)

// Seeds an admin account from ADMIN_USERNAME / ADMIN_PASSWORD. If the
// username already exists the command leaves it untouched, so it can run
// on every deploy.
func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close(ctx)

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	tag, err := conn.Exec(ctx, `
		INSERT INTO admins (id, username, password, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
	`, uuid.New().String(), username, hash, time.Now().UTC())
	if err != nil {
		log.Fatal("Failed to insert admin:", err)
	}

	if tag.RowsAffected() == 0 {
		log.Printf("Admin %q already exists, nothing to do", username)
		return
	}
	log.Printf("Created admin %q", username)
}
