package dto

import "time"

// CategoryImageDTO mirrors the persisted image layout {id, url, destination, isDefault}.
type CategoryImageDTO struct {
	ID          string `json:"id"`
	URL         string `json:"url" validate:"required"`
	Destination string `json:"destination" validate:"required,oneof=web mobile print"`
	IsDefault   bool   `json:"isDefault"`
}

// SaveCategoryRequest is the create/update payload of a category. ParentId is
// null for roots; pricing/sales values of a child are overwritten by the
// parent's regardless of what the client sends.
type SaveCategoryRequest struct {
	NameEn        string             `json:"nameEn" validate:"required"`
	NameAr        string             `json:"nameAr" validate:"required"`
	DescEn        string             `json:"descEn"`
	DescAr        string             `json:"descAr"`
	ParentID      *string            `json:"parentId"`
	PricingMethod string             `json:"pricingMethod" validate:"required,oneof=fixed average actual_cost"`
	SalesStrategy string             `json:"salesStrategy" validate:"required,oneof=fifo filo fefo"`
	Inactive      bool               `json:"inactive"`
	Images        []CategoryImageDTO `json:"images" validate:"dive"`
}

// CategoryResponse is one category record as the dashboard model expects it.
type CategoryResponse struct {
	ID            string             `json:"id"`
	NameEn        string             `json:"nameEn"`
	NameAr        string             `json:"nameAr"`
	DescEn        string             `json:"descEn"`
	DescAr        string             `json:"descAr"`
	ParentID      *string            `json:"parentId"`
	PricingMethod string             `json:"pricingMethod"`
	SalesStrategy string             `json:"salesStrategy"`
	Inactive      bool               `json:"inactive"`
	Images        []CategoryImageDTO `json:"images"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// CategoryTreeResponse is a root with its filtered children (view engine shape).
type CategoryTreeResponse struct {
	CategoryResponse
	Children []CategoryResponse `json:"children"`
}

// CategoryDetailResponse adds the resolved parent summary and the localized
// labels the detail page shows.
type CategoryDetailResponse struct {
	CategoryResponse
	ParentName         string `json:"parentName"`
	PricingMethodLabel string `json:"pricingMethodLabel"`
	SalesStrategyLabel string `json:"salesStrategyLabel"`
}

// ListCategoriesRequest binds the filter criteria from the query string.
// Dates are RFC 3339 dates (2006-01-02); DateTo covers its whole calendar day.
type ListCategoriesRequest struct {
	Search   string `query:"search"`
	ParentID string `query:"parent_id"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
	Shape    string `query:"shape" validate:"omitempty,oneof=tree flat"`
}

// InheritanceResponse tells the edit form whether the pricing/sales fields
// are locked to a parent's values.
type InheritanceResponse struct {
	PricingMethod string `json:"pricingMethod"`
	SalesStrategy string `json:"salesStrategy"`
	Locked        bool   `json:"locked"`
}

// LabelOption is one entry of a label table in form display order.
type LabelOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LabelsResponse carries the localized option tables for the category forms.
type LabelsResponse struct {
	PricingMethods    []LabelOption `json:"pricingMethods"`
	SalesStrategies   []LabelOption `json:"salesStrategies"`
	ImageDestinations []LabelOption `json:"imageDestinations"`
}
