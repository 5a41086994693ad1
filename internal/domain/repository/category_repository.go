package repository

import "github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"

// CategoryRepository defines the persistence port for Category (DIP). The
// in-memory adapter is the reference implementation; the PostgreSQL adapter
// replaces it behind the same contract.
//
// List returns the collection in stable collection order: replacing a record
// keeps its position, new records are appended. UpsertMany and Remove are
// atomic: readers never observe a partially applied batch (this is what the
// save cascade and the subtree delete rely on).
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	Upsert(category *entity.Category) error
	UpsertMany(categories []*entity.Category) error
	Remove(ids ...string) error
}
