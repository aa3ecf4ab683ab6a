package migrations

import (
	"context"
	"fmt"
	"io"

	"github.com/chela-orm/chela"
)

var ups = []func(*chela.DB) error{
	UpUser,
	// Add other migrations here
}

// Register every model of the application, in migration order
func Register(db *chela.DB) error {
	for _, up := range ups {
		if err := up(db); err != nil {
			return err
		}
	}
	return nil
}

// MigrateAll create the tables of every registered model
func MigrateAll(ctx context.Context, db *chela.DB) error {
	if err := Register(db); err != nil {
		return err
	}

	db.Logger.Info(ctx, "running migrations")
	if err := db.Migrate(ctx); err != nil {
		return err
	}
	db.Logger.Info(ctx, "migrations completed")
	return nil
}

// Print write the CREATE TABLE statements without executing them
func Print(w io.Writer, db *chela.DB) error {
	if err := Register(db); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, db.Migrations().String())
	return err
}
