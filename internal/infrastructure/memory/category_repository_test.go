package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/infrastructure/memory"
)

func cat(id, nameEn string) *entity.Category {
	now := time.Now()
	return &entity.Category{
		ID:            id,
		NameEn:        nameEn,
		NameAr:        nameEn,
		PricingMethod: entity.PricingFixed,
		SalesStrategy: entity.SalesFIFO,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func ids(cats []*entity.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.ID)
	}
	return out
}

// Replacing a record keeps its position in the collection; new records append.
func TestCategoryRepo_UpsertKeepsCollectionOrder(t *testing.T) {
	repo := memory.NewCategoryRepository()
	require.NoError(t, repo.Upsert(cat("a", "A")))
	require.NoError(t, repo.Upsert(cat("b", "B")))
	require.NoError(t, repo.Upsert(cat("c", "C")))

	replaced := cat("b", "B v2")
	require.NoError(t, repo.Upsert(replaced))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(list))
	assert.Equal(t, "B v2", list[1].NameEn)
}

func TestCategoryRepo_GetByIDMissingIsNilNil(t *testing.T) {
	repo := memory.NewCategoryRepository()
	got, err := repo.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Reads return copies: mutating a returned record must not leak back into
// the store.
func TestCategoryRepo_ReadsAreCopies(t *testing.T) {
	repo := memory.NewCategoryRepository()
	c := cat("a", "A")
	c.Images = []entity.CategoryImage{{ID: "img", URL: "u", Destination: entity.DestinationWeb}}
	require.NoError(t, repo.Upsert(c))

	got, err := repo.GetByID("a")
	require.NoError(t, err)
	got.NameEn = "mutated"
	got.Images[0].URL = "mutated"

	fresh, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "A", fresh.NameEn)
	assert.Equal(t, "u", fresh.Images[0].URL)
}

func TestCategoryRepo_RemoveBatch(t *testing.T) {
	repo := memory.NewCategoryRepository()
	require.NoError(t, repo.Upsert(cat("a", "A")))
	require.NoError(t, repo.Upsert(cat("b", "B")))
	require.NoError(t, repo.Upsert(cat("c", "C")))

	require.NoError(t, repo.Remove("a", "c", "unknown"))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(list))
}

func TestCategoryRepo_SeedLoadsTwoLevelTree(t *testing.T) {
	repo := memory.NewCategoryRepository()
	require.NoError(t, repo.Seed())

	list, err := repo.List()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	byID := make(map[string]*entity.Category, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	for _, c := range list {
		if c.IsRoot() {
			continue
		}
		parent, ok := byID[c.ParentID]
		require.True(t, ok, "child %s references a seeded parent", c.ID)
		assert.True(t, parent.IsRoot(), "depth is capped at two levels")
		assert.Equal(t, parent.PricingMethod, c.PricingMethod, "seeded children inherit pricing")
		assert.Equal(t, parent.SalesStrategy, c.SalesStrategy, "seeded children inherit strategy")
	}
}
