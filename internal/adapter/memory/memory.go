// Package memory implements an in-memory key-value store for development and testing.
package memory

import (
	"context"
	"sync"

	"weightloss/internal/domain"
)

// DB implements an in-memory key-value storage.
type DB struct {
	mu     sync.Mutex
	values map[string]string

	// FailWrites makes Set and Delete return the error, for exercising
	// persistence failure paths.
	FailWrites error
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{values: make(map[string]string)}
}

// Ensure interfaces are met.
var _ domain.KVStore = (*DB)(nil)

// Get returns the value stored under key.
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (db *DB) Set(ctx context.Context, key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.FailWrites != nil {
		return db.FailWrites
	}
	db.values[key] = value
	return nil
}

// Delete removes key. Missing keys are not an error.
func (db *DB) Delete(ctx context.Context, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.FailWrites != nil {
		return db.FailWrites
	}
	delete(db.values, key)
	return nil
}

// Len returns the number of stored keys.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.values)
}
