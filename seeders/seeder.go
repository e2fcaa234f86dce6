package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tatthien/church-equipment/pkg/config"
)

// SeedAdmin creates the bootstrap administrator account.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("seeding administrator account...")

	if err := seedAdminUser(ctx, db, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Println("administrator account ready")
}

// SeedSampleData fills departments, brands and a few equipment rows
// so a fresh install has something to look at.
func SeedSampleData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding sample data...")

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("failed to seed departments: %v", err)
	}
	if err := seedBrands(ctx, db); err != nil {
		log.Fatalf("failed to seed brands: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("failed to seed equipment: %v", err)
	}

	log.Println("sample data ready")
}
