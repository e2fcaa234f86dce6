package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tatthien/church-equipment/pkg/config"
	"github.com/tatthien/church-equipment/pkg/constants"
	"github.com/tatthien/church-equipment/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", cfg.Admin.Username).Scan(&userID)
	if err == nil {
		log.Printf("  - user %q already exists, skipping", cfg.Admin.Username)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking for existing admin: %w", err)
	}

	hashedPassword, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	query := `INSERT INTO users (username, name, password, role)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (username) DO NOTHING`
	if _, err := db.Exec(ctx, query, cfg.Admin.Username, cfg.Admin.Name, hashedPassword, constants.RoleAdmin); err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}

	log.Printf("  - created administrator %q", cfg.Admin.Username)
	return nil
}
