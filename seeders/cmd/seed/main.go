package main

import (
	"context"
	"flag"
	"log"

	"github.com/tatthien/church-equipment/pkg/config"
	"github.com/tatthien/church-equipment/pkg/database/postgresql"
	"github.com/tatthien/church-equipment/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "create the bootstrap administrator account")
	runSample := flag.Bool("sample", false, "fill departments, brands and equipment with sample rows")
	runAll := flag.Bool("all", false, "run every seeder (equivalent to -admin -sample)")

	flag.Parse()

	if !*runAdmin && !*runSample && !*runAll {
		log.Println("no seeder selected")
		log.Println("")
		log.Println("available flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("examples:")
		log.Println("  go run ./seeders/cmd/seed -admin")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool, cfg)
	}
	if *runAll || *runSample {
		// Sample equipment rows need an owner, so the admin seeder runs first.
		seeders.SeedSampleData(dbPool)
	}
}
