package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
)

func fixtureRoots() []*entity.Category {
	now := time.Now()
	return []*entity.Category{
		{
			ID: "r1", NameEn: "Electronics", NameAr: "إلكترونيات",
			PricingMethod: entity.PricingAverage, SalesStrategy: entity.SalesFIFO,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "r2", NameEn: "Groceries", NameAr: "بقالة",
			PricingMethod: entity.PricingActualCost, SalesStrategy: entity.SalesFEFO,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

// Selecting a root as parent locks the pricing/sales fields to that root's
// current values.
func TestResolveInheritance_KnownRootLocks(t *testing.T) {
	inh := catalog.ResolveInheritance("r2", fixtureRoots())

	assert.True(t, inh.Locked)
	assert.Equal(t, entity.PricingActualCost, inh.PricingMethod)
	assert.Equal(t, entity.SalesFEFO, inh.SalesStrategy)
}

// Clearing the parent unlocks without imposing values: the caller keeps its
// last-known field values.
func TestResolveInheritance_EmptyParentUnlocks(t *testing.T) {
	inh := catalog.ResolveInheritance("", fixtureRoots())

	assert.False(t, inh.Locked)
	assert.Empty(t, inh.PricingMethod)
	assert.Empty(t, inh.SalesStrategy)
}

// An unknown candidate degrades to unlocked rather than failing.
func TestResolveInheritance_UnknownParentUnlocks(t *testing.T) {
	inh := catalog.ResolveInheritance("missing", fixtureRoots())
	assert.False(t, inh.Locked)
}
