package chela

import (
	"errors"
)

var (
	// ErrRecordNotFound record not found error
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidDB neither a connection pool nor a dialector to open one
	ErrInvalidDB = errors.New("invalid db")
	// ErrModelNotRegistered repository requested for a model Register never saw
	ErrModelNotRegistered = errors.New("model not registered")
	// ErrModelValueRequired model value required
	ErrModelValueRequired = errors.New("model value required")
	// ErrPrimaryKeyRequired primary keys required
	ErrPrimaryKeyRequired = errors.New("primary key required")
	// ErrUnsupportedRelation unsupported relations
	ErrUnsupportedRelation = errors.New("unsupported relations")
)
