package chela

import (
	"time"

	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/logger"
	"github.com/chela-orm/chela/schema"
)

// Option use functional option for chela Config.
type Option func(c *Config)

// WithLogger set logger.
func WithLogger(logger logger.Interface) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithNamingStrategy set schema namer.
func WithNamingStrategy(namer schema.Namer) Option {
	return func(c *Config) {
		c.NamingStrategy = namer
	}
}

// WithAutoIncrement set the column type of auto-increment primary keys.
func WithAutoIncrement(dataType clause.DataType) Option {
	return func(c *Config) {
		c.AutoIncrement = dataType
	}
}

// WithMigrationConcurrency bound concurrent migrations, 1 runs them in declaration order.
func WithMigrationConcurrency(n int) Option {
	return func(c *Config) {
		c.MigrationConcurrency = n
	}
}

// WithConnPool use an already opened pool.
func WithConnPool(pool dialect.ConnPool) Option {
	return func(c *Config) {
		c.ConnPool = pool
	}
}

// WithNowFunc set now func.
func WithNowFunc(fn func() time.Time) Option {
	return func(c *Config) {
		c.NowFunc = fn
	}
}
