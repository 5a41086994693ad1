package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/dto"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
)

// CatalogHandler serves the static localized option tables the forms render.
type CatalogHandler struct{}

// NewCatalogHandler builds the handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Labels godoc
// @Summary      Localized option tables for the category forms
// @Tags         catalog
// @Produce      json
// @Param        lang  query  string  false  "en or ar"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/catalog/labels [get]
func (h *CatalogHandler) Labels(c *fiber.Ctx) error {
	arabic := Lang(c) == "ar"
	out := dto.LabelsResponse{
		PricingMethods:    toOptions(catalog.PricingMethodOptions(), arabic),
		SalesStrategies:   toOptions(catalog.SalesStrategyOptions(), arabic),
		ImageDestinations: destinationOptions(arabic),
	}
	return c.JSON(dto.ApiResponse{Data: out, Success: true})
}

func toOptions(options []catalog.Option, arabic bool) []dto.LabelOption {
	out := make([]dto.LabelOption, 0, len(options))
	for _, o := range options {
		label := o.Label.En
		if arabic {
			label = o.Label.Ar
		}
		out = append(out, dto.LabelOption{Value: o.Value, Label: label})
	}
	return out
}

func destinationOptions(arabic bool) []dto.LabelOption {
	values := []string{"web", "mobile", "print"}
	out := make([]dto.LabelOption, 0, len(values))
	for _, v := range values {
		out = append(out, dto.LabelOption{
			Value: v,
			Label: catalog.ResolveLabel(catalog.ImageDestinationLabels, v, arabic),
		})
	}
	return out
}
