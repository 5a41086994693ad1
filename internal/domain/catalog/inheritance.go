package catalog

import "github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"

// Inheritance is the edit-form decision for the pricing/sales fields: when
// Locked, the fields must show the root's values and reject user input; when
// not, the caller keeps whatever values it already has.
type Inheritance struct {
	PricingMethod entity.PricingMethod
	SalesStrategy entity.SalesStrategy
	Locked        bool
}

// ResolveInheritance decides whether the pricing/sales fields are governed by
// the candidate parent. parentID empty or not matching any of the given roots
// leaves the fields editable. It must be re-evaluated on every parent
// selection change, including the initial load of an edit form.
func ResolveInheritance(parentID string, roots []*entity.Category) Inheritance {
	if parentID == "" {
		return Inheritance{}
	}
	for _, r := range roots {
		if r.ID == parentID && r.IsRoot() {
			return Inheritance{
				PricingMethod: r.PricingMethod,
				SalesStrategy: r.SalesStrategy,
				Locked:        true,
			}
		}
	}
	return Inheritance{}
}
