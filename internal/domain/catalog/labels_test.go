package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
)

func TestResolveLabel_LocalizedLookup(t *testing.T) {
	assert.Equal(t, "Fixed", catalog.ResolveLabel(catalog.PricingMethodLabels, "fixed", false))
	assert.Equal(t, "ثابت", catalog.ResolveLabel(catalog.PricingMethodLabels, "fixed", true))
	assert.Equal(t, "First Expiry First Out (FEFO)", catalog.ResolveLabel(catalog.SalesStrategyLabels, "fefo", false))
}

// Unknown codes come back unchanged so legacy data stays visibly
// distinguishable instead of being silently blanked.
func TestResolveLabel_UnknownCodeFallsBackToRawCode(t *testing.T) {
	assert.Equal(t, "legacy_method", catalog.ResolveLabel(catalog.PricingMethodLabels, "legacy_method", false))
	assert.Equal(t, "legacy_method", catalog.ResolveLabel(catalog.PricingMethodLabels, "legacy_method", true))
	assert.NotEmpty(t, catalog.ResolveLabel(catalog.SalesStrategyLabels, "??", true))
}

func TestOptionTablesPreserveFormOrder(t *testing.T) {
	pricing := catalog.PricingMethodOptions()
	values := make([]string, 0, len(pricing))
	for _, o := range pricing {
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{"fixed", "average", "actual_cost"}, values)

	sales := catalog.SalesStrategyOptions()
	values = values[:0]
	for _, o := range sales {
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{"fifo", "filo", "fefo"}, values)
}
