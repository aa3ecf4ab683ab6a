package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/chela-orm/chela"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/internal/migrations"
)

func main() {
	// --- Flags ---
	configFile := flag.String("config", "chela.yml", "YAML config file")
	dryRun := flag.Bool("print", false, "Print the CREATE TABLE statements instead of running them")
	concurrency := flag.Int("concurrency", -1, "Statements run at once, 0 is unbounded; -1 keeps the config value (1 unless set)")

	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *concurrency >= 0 {
		config.Concurrency = *concurrency
	}

	if err := run(config, *dryRun); err != nil {
		log.Fatal(err)
	}
}

func run(config Config, dryRun bool) error {
	l, err := config.newLogger()
	if err != nil {
		return err
	}

	dialector, err := dialect.New(config.Dialect, config.DSN)
	if err != nil {
		return err
	}

	db, err := chela.Open(dialector, chela.WithLogger(l), chela.WithMigrationConcurrency(config.Concurrency))
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		return migrations.Print(os.Stdout, db)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := migrations.MigrateAll(ctx, db); err != nil {
		return err
	}
	fmt.Println("Done!")
	return nil
}
