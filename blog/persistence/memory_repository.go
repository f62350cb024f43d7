package persistence

import (
	"context"
	"fmt"
	"sync"

	"postcomments/blog/domain"

	"github.com/google/uuid"
)

var _ domain.Repository[*domain.Post] = (*MemoryRepository[*domain.Post])(nil)

// MemoryRepository implements domain.Repository over an ordered, mutable
// slice guarded by a read-write mutex. Lookup is a linear scan, update
// replaces by positional index and delete removes the first id match, so
// insertion order is preserved across every operation.
//
// The store is single-process and non-durable. Individual calls are safe for
// concurrent use, but no atomicity is promised across multiple calls within
// one service operation: the last writer wins.
type MemoryRepository[T domain.Entity] struct {
	mu    sync.RWMutex
	items []T
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository[T domain.Entity]() *MemoryRepository[T] {
	return &MemoryRepository[T]{
		items: make([]T, 0),
	}
}

// GetByID returns the stored entity with the given id, if any.
func (r *MemoryRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.EntityID() == id {
			return item, true, nil
		}
	}

	var zero T
	return zero, false, nil
}

// ListAll returns every stored entity in insertion order.
func (r *MemoryRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

// List returns the stored entities satisfying keep, in insertion order.
func (r *MemoryRepository[T]) List(ctx context.Context, keep func(T) bool) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Add appends a new entity. Ids are unique store-wide: adding an entity
// whose id is already present fails with ErrDuplicateID.
func (r *MemoryRepository[T]) Add(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(entity.EntityID()) >= 0 {
		return fmt.Errorf("failed to add entity %s: %w", entity.EntityID(), domain.ErrDuplicateID)
	}

	r.items = append(r.items, entity)
	return nil
}

// Update replaces the stored entity sharing the given entity's id.
func (r *MemoryRepository[T]) Update(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOf(entity.EntityID())
	if index < 0 {
		return fmt.Errorf("failed to update entity %s: %w", entity.EntityID(), domain.ErrNoSuchEntity)
	}

	r.items[index] = entity
	return nil
}

// Delete removes the stored entity matching the given entity's id.
func (r *MemoryRepository[T]) Delete(ctx context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := r.indexOf(entity.EntityID())
	if index < 0 {
		return fmt.Errorf("failed to delete entity %s: %w", entity.EntityID(), domain.ErrNoSuchEntity)
	}

	r.items = append(r.items[:index], r.items[index+1:]...)
	return nil
}

// indexOf returns the position of the first entity with the given id, or -1.
// Callers must hold the mutex.
func (r *MemoryRepository[T]) indexOf(id uuid.UUID) int {
	for i, item := range r.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}
