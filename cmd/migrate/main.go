package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/samirrijal/stayfinder/internal/adapters/postgres"
	"github.com/samirrijal/stayfinder/internal/pkg/config"
	"github.com/samirrijal/stayfinder/internal/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: migrate <up|down|list>")
	}

	cfg, err := config.Load("stayfinder-migrate")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if os.Args[1] == "list" {
		migrations, err := postgres.Migrations()
		if err != nil {
			log.Fatalf("migrations: %v", err)
		}
		for _, m := range migrations {
			fmt.Println(m.Name)
		}
		return
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.Database.DSN(), 2)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		err = db.Migrate(ctx, func(name string) {
			fmt.Printf("OK  %s\n", name)
		})
		if err != nil {
			log.Fatalf("migrate: %v", err)
		}
		log.Println("all migrations applied")
	case "down":
		if err := db.Reset(ctx); err != nil {
			log.Fatalf("reset: %v", err)
		}
		log.Println("schema dropped")
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
