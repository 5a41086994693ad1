// Package catalog holds the pure domain logic of the stock-category tree:
// the bilingual label tables, the parent/child inheritance resolver and the
// filter/search view engine. Nothing here performs I/O or mutates its inputs.
package catalog

// Label is a bilingual display label for an enumerated code.
type Label struct {
	En string
	Ar string
}

// PricingMethodLabels maps pricing method codes to their display labels.
var PricingMethodLabels = map[string]Label{
	"fixed":       {En: "Fixed", Ar: "ثابت"},
	"average":     {En: "Average", Ar: "متوسط"},
	"actual_cost": {En: "Actual Cost", Ar: "التكلفة الفعلية"},
}

// SalesStrategyLabels maps sales strategy codes to their display labels.
var SalesStrategyLabels = map[string]Label{
	"fifo": {En: "First In First Out (FIFO)", Ar: "الأول دخولاً الأول خروجاً"},
	"filo": {En: "First In Last Out (FILO)", Ar: "الأول دخولاً الأخير خروجاً"},
	"fefo": {En: "First Expiry First Out (FEFO)", Ar: "الأقرب انتهاءً الأول خروجاً"},
}

// ImageDestinationLabels maps image destination codes to their display labels.
var ImageDestinationLabels = map[string]Label{
	"web":    {En: "Web", Ar: "ويب"},
	"mobile": {En: "Mobile", Ar: "جوال"},
	"print":  {En: "Print", Ar: "طباعة"},
}

// Option preserves the form display order of a label table.
type Option struct {
	Value string
	Label Label
}

// PricingMethodOptions returns the pricing methods in form display order.
func PricingMethodOptions() []Option {
	return []Option{
		{Value: "fixed", Label: PricingMethodLabels["fixed"]},
		{Value: "average", Label: PricingMethodLabels["average"]},
		{Value: "actual_cost", Label: PricingMethodLabels["actual_cost"]},
	}
}

// SalesStrategyOptions returns the sales strategies in form display order.
func SalesStrategyOptions() []Option {
	return []Option{
		{Value: "fifo", Label: SalesStrategyLabels["fifo"]},
		{Value: "filo", Label: SalesStrategyLabels["filo"]},
		{Value: "fefo", Label: SalesStrategyLabels["fefo"]},
	}
}

// ResolveLabel returns the localized label for code, or the raw code when it
// is not a known key. Unrecognized legacy codes stay visible instead of being
// blanked out.
func ResolveLabel(table map[string]Label, code string, arabic bool) string {
	l, ok := table[code]
	if !ok {
		return code
	}
	if arabic {
		return l.Ar
	}
	return l.En
}
