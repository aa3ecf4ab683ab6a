package chela

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/chela-orm/chela/dialect"
	"github.com/chela-orm/chela/migrator"
	"github.com/chela-orm/chela/schema"
)

// DB chela DB definition
type DB struct {
	*Config

	conn     *dialect.Conn
	migrator migrator.Migrator

	mu     sync.RWMutex
	models []*schema.Model
}

// Open initialize db session based on dialector
func Open(dialector dialect.Dialector, opts ...Option) (*DB, error) {
	config := &Config{Dialector: dialector}
	config.apply(opts...)

	if config.ConnPool == nil && config.Dialector != nil {
		pool, err := config.Dialector.Open()
		if err != nil {
			config.Logger.Error(context.Background(), "failed to open %s: %v", config.Dialector.Name(), err)
			return nil, err
		}
		config.ConnPool = pool
	}

	if config.ConnPool == nil {
		return nil, ErrInvalidDB
	}

	db := &DB{
		Config: config,
		conn:   dialect.NewConn(config.ConnPool, config.Logger),
		migrator: migrator.New(migrator.Config{
			AutoIncrement: config.AutoIncrement,
			Concurrency:   config.MigrationConcurrency,
			Logger:        config.Logger,
		}),
	}
	return db, nil
}

// Conn the traced executor every statement goes through
func (db *DB) Conn() dialect.Executor {
	return db.conn
}

// Close closes the pool when it can be closed
func (db *DB) Close() error {
	if closer, ok := db.ConnPool.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Register parse models into entities, declaration order is kept
func (db *DB) Register(models ...interface{}) error {
	parsed := make([]*schema.Model, 0, len(models))
	for _, value := range models {
		model, err := schema.Parse(value, db.cacheStore, db.NamingStrategy)
		if err != nil {
			return err
		}
		parsed = append(parsed, model)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	for _, model := range parsed {
		if db.lookup(model.ModelType) == nil {
			db.models = append(db.models, model)
		}
	}
	return nil
}

// Schema entities of the registered models
func (db *DB) Schema() schema.Schema {
	db.mu.RLock()
	defer db.mu.RUnlock()

	entities := make([]schema.Entity, 0, len(db.models))
	for _, model := range db.models {
		entities = append(entities, model.Entity())
	}
	return schema.NewSchema(entities...)
}

// Migrations one CREATE TABLE per registered model
func (db *DB) Migrations() migrator.Migrations {
	return db.migrator.Migrations(db.Schema())
}

// Migrate run the migrations, returns the first failure
func (db *DB) Migrate(ctx context.Context) error {
	return db.migrator.Run(ctx, db.conn, db.Migrations())
}

// Repository statements and loaders of a registered model
func (db *DB) Repository(value interface{}) (*Repository, error) {
	if value == nil {
		return nil, ErrModelValueRequired
	}

	modelType := reflect.TypeOf(value)
	for modelType.Kind() == reflect.Ptr || modelType.Kind() == reflect.Slice || modelType.Kind() == reflect.Array {
		modelType = modelType.Elem()
	}

	db.mu.RLock()
	model := db.lookup(modelType)
	db.mu.RUnlock()
	if model == nil {
		return nil, fmt.Errorf("%w: %s", ErrModelNotRegistered, modelType)
	}
	return newRepository(db, model), nil
}

func (db *DB) lookup(modelType reflect.Type) *schema.Model {
	for _, model := range db.models {
		if model.ModelType == modelType {
			return model
		}
	}
	return nil
}
