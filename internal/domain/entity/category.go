package entity

import "time"

// PricingMethod determines how the cost of items under a category is valued.
type PricingMethod string

const (
	PricingFixed      PricingMethod = "fixed"
	PricingAverage    PricingMethod = "average"
	PricingActualCost PricingMethod = "actual_cost"
)

// ValidPricingMethods contains the accepted pricing method codes.
var ValidPricingMethods = map[PricingMethod]bool{
	PricingFixed:      true,
	PricingAverage:    true,
	PricingActualCost: true,
}

// SalesStrategy determines the order in which stock leaves a category.
type SalesStrategy string

const (
	SalesFIFO SalesStrategy = "fifo"
	SalesFILO SalesStrategy = "filo"
	SalesFEFO SalesStrategy = "fefo"
)

// ValidSalesStrategies contains the accepted sales strategy codes.
var ValidSalesStrategies = map[SalesStrategy]bool{
	SalesFIFO: true,
	SalesFILO: true,
	SalesFEFO: true,
}

// ImageDestination is the channel a category image is published to.
type ImageDestination string

const (
	DestinationWeb    ImageDestination = "web"
	DestinationMobile ImageDestination = "mobile"
	DestinationPrint  ImageDestination = "print"
)

// ValidImageDestinations contains the accepted image destination codes.
var ValidImageDestinations = map[ImageDestination]bool{
	DestinationWeb:    true,
	DestinationMobile: true,
	DestinationPrint:  true,
}

// CategoryImage is one image attached to a category, tagged with the channel
// it is published to. At most one image per category carries IsDefault.
type CategoryImage struct {
	ID          string
	URL         string
	Destination ImageDestination
	IsDefault   bool
}

// Category is a node of the two-level stock-category tree. A category with an
// empty ParentID is a root; otherwise ParentID references a root and
// PricingMethod/SalesStrategy are kept in sync with that root.
type Category struct {
	ID            string
	NameEn        string
	NameAr        string
	DescEn        string
	DescAr        string
	ParentID      string // empty for roots
	PricingMethod PricingMethod
	SalesStrategy SalesStrategy
	Inactive      bool
	Images        []CategoryImage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsRoot reports whether the category is a top-level (parent) category.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}

// Name returns the display name for the given language ("ar" selects the
// Arabic name, anything else the English one).
func (c *Category) Name(lang string) string {
	if lang == "ar" {
		return c.NameAr
	}
	return c.NameEn
}

// Clone returns a deep copy so store snapshots never alias caller-held slices.
func (c *Category) Clone() *Category {
	cp := *c
	if c.Images != nil {
		cp.Images = make([]CategoryImage, len(c.Images))
		copy(cp.Images, c.Images)
	}
	return &cp
}
