// Package memory is the reference implementation of the category persistence
// port: a mutex-guarded slice that preserves collection order. A production
// deployment swaps it for the postgres adapter behind the same interface.
package memory

import (
	"sync"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo holds the category collection in memory. Replacing a record
// keeps its position; new records are appended. All reads return deep copies
// so callers never hold live references into the store.
type CategoryRepo struct {
	mu         sync.RWMutex
	categories []*entity.Category
}

// NewCategoryRepository builds an empty in-memory store.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{}
}

// List returns the collection in collection order.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c.Clone())
	}
	return out, nil
}

// GetByID returns the category or (nil, nil) when missing.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

// Upsert replaces the record with the same id in place, or appends it.
func (r *CategoryRepo) Upsert(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsertLocked(category)
	return nil
}

// UpsertMany applies the whole batch under one write lock, so a reader never
// observes a root updated with only some children cascaded.
func (r *CategoryRepo) UpsertMany(categories []*entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range categories {
		r.upsertLocked(c)
	}
	return nil
}

// Remove deletes all given ids in one atomic step. Unknown ids are ignored.
func (r *CategoryRepo) Remove(ids ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.categories[:0]
	for _, c := range r.categories {
		if !drop[c.ID] {
			kept = append(kept, c)
		}
	}
	r.categories = kept
	return nil
}

func (r *CategoryRepo) upsertLocked(category *entity.Category) {
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category.Clone()
			return
		}
	}
	r.categories = append(r.categories, category.Clone())
}
