package migrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/chela-orm/chela/dialect"
)

// Run executes the migrations concurrently and waits for all of them.
// The first failure is returned; statements that already ran are kept
func (m Migrator) Run(ctx context.Context, exec dialect.Executor, migrations Migrations) error {
	if len(migrations) == 0 {
		return nil
	}

	if m.Logger != nil {
		m.Logger.Info(ctx, "running %d migrations", len(migrations))
	}

	g, gctx := errgroup.WithContext(ctx)
	if m.Concurrency > 0 {
		g.SetLimit(m.Concurrency)
	}

	for idx, sql := range migrations.SQL() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := exec.Exec(gctx, sql); err != nil {
				return fmt.Errorf("migration %d failed: %w", idx+1, err)
			}
			return nil
		})
	}
	return g.Wait()
}
