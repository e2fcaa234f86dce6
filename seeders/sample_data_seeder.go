package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tatthien/church-equipment/pkg/constants"
)

var sampleDepartments = []struct {
	Name        string
	Description string
}{
	{"Worship", "Band, vocals and stage equipment"},
	{"Media", "Cameras, projection and livestream gear"},
	{"Sound", "Front of house and monitoring"},
	{"Kids Ministry", "Classroom and play area equipment"},
}

var sampleBrands = []struct {
	Name        string
	Description string
}{
	{"Yamaha", "Mixers and instruments"},
	{"Shure", "Microphones and wireless systems"},
	{"Canon", "Cameras and lenses"},
	{"Epson", "Projectors"},
}

var sampleEquipment = []struct {
	Name       string
	Status     string
	Department string
	Brand      string
}{
	{"MG16XU Mixing Console", constants.StatusOld, "Sound", "Yamaha"},
	{"SM58 Vocal Microphone", constants.StatusNew, "Worship", "Shure"},
	{"EOS R6 Camera Body", constants.StatusNew, "Media", "Canon"},
	{"EB-2250U Projector", constants.StatusRepairing, "Media", "Epson"},
	{"BLX14R Wireless Rack", constants.StatusDamaged, "Worship", "Shure"},
}

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	for _, d := range sampleDepartments {
		_, err := db.Exec(ctx,
			"INSERT INTO departments (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
			d.Name, d.Description)
		if err != nil {
			return fmt.Errorf("inserting department %q: %w", d.Name, err)
		}
	}
	log.Printf("  - %d departments", len(sampleDepartments))
	return nil
}

func seedBrands(ctx context.Context, db *pgxpool.Pool) error {
	for _, b := range sampleBrands {
		_, err := db.Exec(ctx,
			"INSERT INTO brands (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
			b.Name, b.Description)
		if err != nil {
			return fmt.Errorf("inserting brand %q: %w", b.Name, err)
		}
	}
	log.Printf("  - %d brands", len(sampleBrands))
	return nil
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	// Attach sample rows to the first admin so they show up in scoped lists.
	var ownerID uint64
	if err := db.QueryRow(ctx,
		"SELECT id FROM users WHERE role = $1 ORDER BY id LIMIT 1",
		constants.RoleAdmin).Scan(&ownerID); err != nil {
		return fmt.Errorf("looking up admin owner: %w", err)
	}

	query := `INSERT INTO equipment (public_id, name, status, department_id, brand_id, created_by)
	          SELECT $1, $2, $3, d.id, b.id, $6
	          FROM departments d, brands b
	          WHERE d.name = $4 AND b.name = $5
	          ON CONFLICT DO NOTHING`
	for _, e := range sampleEquipment {
		var exists bool
		if err := db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM equipment WHERE name = $1)", e.Name).Scan(&exists); err != nil {
			return fmt.Errorf("checking equipment %q: %w", e.Name, err)
		}
		if exists {
			continue
		}
		if _, err := db.Exec(ctx, query, uuid.New(), e.Name, e.Status, e.Department, e.Brand, ownerID); err != nil {
			return fmt.Errorf("inserting equipment %q: %w", e.Name, err)
		}
	}
	log.Printf("  - %d equipment rows", len(sampleEquipment))
	return nil
}
