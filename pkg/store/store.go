// Package store persists generation records for serve mode.
//
// Every successful pom generation handled by the HTTP API produces a
// [Record]: the requested targets, the flattened coordinate list, and the
// rendered pom text, under a unique ID. Records back the history endpoint
// and make generated output reproducible after the fact.
//
// Two backends are provided: [MemoryStore] for single-instance and test use,
// and [MongoStore] for durable multi-instance deployments.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by [Store.Get] when no record has the given ID.
var ErrNotFound = errors.New("record not found")

// Record is one completed pom generation.
type Record struct {
	ID          string    `json:"id" bson:"_id"`
	Targets     []string  `json:"targets" bson:"targets"`
	Coordinates []string  `json:"coordinates" bson:"coordinates"` // sorted order as rendered
	POM         string    `json:"pom" bson:"pom"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Store is the interface for generation-record backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores a record. An existing record with the same ID is replaced.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (Record, error)

	// List returns the most recent records, newest first, up to limit.
	// A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
