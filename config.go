package chela

import (
	"sync"
	"time"

	"github.com/chela-orm/chela/clause"
	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/logger"
	"github.com/chela-orm/chela/schema"
)

// Config chela config
type Config struct {
	// Dialector opens the connection pool and provides the auto-increment column type
	Dialector dialect.Dialector
	// ConnPool skip Dialector.Open and use this pool
	ConnPool dialect.ConnPool

	// NamingStrategy tables, columns naming strategy
	NamingStrategy schema.Namer
	// AutoIncrement overrides the dialect's auto-increment column type
	AutoIncrement clause.DataType
	// MigrationConcurrency bounds concurrent CREATE TABLE statements, 0 means unbounded
	MigrationConcurrency int

	Logger logger.Interface
	// NowFunc the function to be used when creating a new timestamp
	NowFunc func() time.Time

	bytesLiteral func([]byte) clause.Value
	cacheStore   *sync.Map
}

func (c *Config) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.NamingStrategy == nil {
		c.NamingStrategy = schema.NamingStrategy{}
	}
	if c.Logger == nil {
		c.Logger = logger.Default
	}
	if c.NowFunc == nil {
		// timestamps are written with microsecond precision
		c.NowFunc = func() time.Time { return time.Now().Local().Truncate(time.Microsecond) }
	}
	if c.AutoIncrement == nil {
		if c.Dialector != nil {
			c.AutoIncrement = c.Dialector.AutoIncrement()
		} else {
			c.AutoIncrement = dialect.DefaultAutoIncrement()
		}
	}
	if c.bytesLiteral == nil {
		if c.Dialector != nil {
			c.bytesLiteral = c.Dialector.BytesLiteral
		} else {
			c.bytesLiteral = dialect.DefaultBytesLiteral
		}
	}
	if c.cacheStore == nil {
		c.cacheStore = &sync.Map{}
	}
}
