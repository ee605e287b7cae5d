package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lovgol/models"
)

func (db *DB) CreateAdmin(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	admin := &models.Admin{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO admins (id, username, password, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := db.Pool.Exec(ctx, query, admin.ID, admin.Username, admin.Password, admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

func (db *DB) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT id, username, password, created_at FROM admins WHERE username = $1`
	return db.getAdmin(ctx, query, username)
}

func (db *DB) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `SELECT id, username, password, created_at FROM admins WHERE id = $1`
	return db.getAdmin(ctx, query, id)
}

func (db *DB) getAdmin(ctx context.Context, query, key string) (*models.Admin, error) {
	var admin models.Admin
	err := db.Pool.QueryRow(ctx, query, key).Scan(&admin.ID, &admin.Username, &admin.Password, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}
