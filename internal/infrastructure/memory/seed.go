package memory

import (
	"time"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
)

// Seed loads the demo category tree used in development. Two roots with
// children exercising both pricing methods and all three sales strategies.
func (r *CategoryRepo) Seed() error {
	base := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	day := 24 * time.Hour

	cats := []*entity.Category{
		{
			ID:            "cat-electronics",
			NameEn:        "Electronics",
			NameAr:        "إلكترونيات",
			DescEn:        "Devices and accessories",
			DescAr:        "أجهزة وملحقات",
			PricingMethod: entity.PricingAverage,
			SalesStrategy: entity.SalesFIFO,
			Images: []entity.CategoryImage{
				{ID: "img-elec-web", URL: "https://cdn.ezee-pay.example/cat/electronics.png", Destination: entity.DestinationWeb, IsDefault: true},
				{ID: "img-elec-mob", URL: "https://cdn.ezee-pay.example/cat/electronics-sm.png", Destination: entity.DestinationMobile},
			},
			CreatedAt: base,
			UpdatedAt: base,
		},
		{
			ID:            "cat-phones",
			NameEn:        "Mobile Phones",
			NameAr:        "هواتف محمولة",
			ParentID:      "cat-electronics",
			PricingMethod: entity.PricingAverage,
			SalesStrategy: entity.SalesFIFO,
			CreatedAt:     base.Add(1 * day),
			UpdatedAt:     base.Add(1 * day),
		},
		{
			ID:            "cat-laptops",
			NameEn:        "Laptops",
			NameAr:        "حواسيب محمولة",
			ParentID:      "cat-electronics",
			PricingMethod: entity.PricingAverage,
			SalesStrategy: entity.SalesFIFO,
			CreatedAt:     base.Add(2 * day),
			UpdatedAt:     base.Add(2 * day),
		},
		{
			ID:            "cat-groceries",
			NameEn:        "Groceries",
			NameAr:        "بقالة",
			DescEn:        "Perishable and dry goods",
			DescAr:        "مواد غذائية طازجة وجافة",
			PricingMethod: entity.PricingActualCost,
			SalesStrategy: entity.SalesFEFO,
			Images: []entity.CategoryImage{
				{ID: "img-groc-web", URL: "https://cdn.ezee-pay.example/cat/groceries.png", Destination: entity.DestinationWeb, IsDefault: true},
				{ID: "img-groc-prt", URL: "https://cdn.ezee-pay.example/cat/groceries-print.png", Destination: entity.DestinationPrint},
			},
			CreatedAt: base.Add(3 * day),
			UpdatedAt: base.Add(3 * day),
		},
		{
			ID:            "cat-dairy",
			NameEn:        "Dairy",
			NameAr:        "ألبان",
			ParentID:      "cat-groceries",
			PricingMethod: entity.PricingActualCost,
			SalesStrategy: entity.SalesFEFO,
			CreatedAt:     base.Add(4 * day),
			UpdatedAt:     base.Add(4 * day),
		},
		{
			ID:            "cat-stationery",
			NameEn:        "Stationery",
			NameAr:        "قرطاسية",
			PricingMethod: entity.PricingFixed,
			SalesStrategy: entity.SalesFILO,
			Inactive:      true,
			CreatedAt:     base.Add(5 * day),
			UpdatedAt:     base.Add(5 * day),
		},
	}
	return r.UpsertMany(cats)
}
