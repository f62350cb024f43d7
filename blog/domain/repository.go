package domain

import (
	"context"

	"github.com/google/uuid"
)

// Entity is any persisted record carrying a unique, immutable identifier.
type Entity interface {
	EntityID() uuid.UUID
}

// Repository is an identity-keyed collection of entities.
// Absence on lookup is a legitimate result, reported through the bool
// return rather than an error; callers that require presence are
// responsible for converting absence into their own not-found errors.
//
// The in-memory implementation in blog/persistence satisfies this for the
// reference system; a database-backed implementation could satisfy it
// identically, which is why every method takes a context.
type Repository[T Entity] interface {
	// GetByID returns the stored entity with the given id, if any.
	GetByID(ctx context.Context, id uuid.UUID) (T, bool, error)

	// ListAll returns every stored entity in insertion order.
	ListAll(ctx context.Context) ([]T, error)

	// List returns the stored entities satisfying keep, in insertion order.
	List(ctx context.Context, keep func(T) bool) ([]T, error)

	// Add inserts a new entity. It fails with ErrDuplicateID if an entity
	// with the same id is already stored; it never silently overwrites.
	Add(ctx context.Context, entity T) error

	// Update replaces the stored entity sharing the given entity's id.
	// It fails with ErrNoSuchEntity if no such entity is stored.
	Update(ctx context.Context, entity T) error

	// Delete removes the stored entity matching the given entity's id.
	// It fails with ErrNoSuchEntity if no such entity is stored.
	Delete(ctx context.Context, entity T) error
}
