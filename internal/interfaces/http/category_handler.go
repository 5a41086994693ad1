package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/dto"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/usecase"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
)

// CategoryHandler handles the HTTP surface of the stock-category tree.
type CategoryHandler struct {
	uc     *usecase.CategoryUseCase
	report *usecase.ReportUseCase
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, report *usecase.ReportUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, report: report}
}

// List godoc
// @Summary      Filtered category view
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Name search (en case-insensitive, ar exact)"
// @Param        parent_id  query  string  false  "Restrict to one root's subtree"
// @Param        date_from  query  string  false  "Created from (2006-01-02)"
// @Param        date_to    query  string  false  "Created up to and including this day"
// @Param        shape      query  string  false  "tree (default) or flat"
// @Success      200  {object}  dto.ApiResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListCategoriesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	criteria, errResp := toCriteria(in)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	if in.Shape == "flat" {
		out, err := h.uc.ViewFlat(criteria)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(dto.ApiResponse{Data: out, Success: true})
	}
	out, err := h.uc.ViewTree(criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ApiResponse{Data: out, Success: true})
}

// ListRoots godoc
// @Summary      Parent categories in collection order
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/categories/roots [get]
func (h *CategoryHandler) ListRoots(c *fiber.Ctx) error {
	out, err := h.uc.ListRoots()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ApiResponse{Data: out, Success: true})
}

// GetByID godoc
// @Summary      Category detail with localized labels
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "Category id"
// @Param        lang  query  string  false  "en or ar"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetDetail(id, Lang(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "category not found"})
	}
	return c.JSON(dto.ApiResponse{Data: out, Success: true})
}

// Create godoc
// @Summary      Create category
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCategoryRequest  true  "Category data"
// @Success      201  {object}  dto.ApiResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	return h.save(c, "")
}

// Update godoc
// @Summary      Update category (cascades pricing/sales to children when a root)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Category id"
// @Param        body  body  dto.SaveCategoryRequest  true  "Category data"
// @Success      200  {object}  dto.ApiResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	return h.save(c, c.Params("id"))
}

func (h *CategoryHandler) save(c *fiber.Ctx, id string) error {
	var in dto.SaveCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, created, err := h.uc.Save(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidParent):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARENT", Message: "parentId must reference an existing parent category"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid category data"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	status := fiber.StatusOK
	message := "category updated"
	if created {
		status = fiber.StatusCreated
		message = "category created"
	}
	return c.Status(status).JSON(dto.ApiResponse{Data: out, Message: message, Success: true})
}

// Delete godoc
// @Summary      Delete category and its children
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Category id"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Deleting an unknown id is benign: the record is gone either way.
	return c.JSON(dto.ApiResponse{Message: "category deleted", Success: true})
}

// Inheritance godoc
// @Summary      Edit-form inheritance lock for a candidate parent
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        parent_id  query  string  false  "Candidate parent id"
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/categories/inheritance [get]
func (h *CategoryHandler) Inheritance(c *fiber.Ctx) error {
	out, err := h.uc.Inheritance(c.Query("parent_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ApiResponse{Data: out, Success: true})
}

// Report godoc
// @Summary      Printable category report (PDF)
// @Tags         categories
// @Security     Bearer
// @Produce      application/pdf
// @Param        lang  query  string  false  "en or ar"
// @Success      200  {file}  binary
// @Router       /api/categories/report [get]
func (h *CategoryHandler) Report(c *fiber.Ctx) error {
	var in dto.ListCategoriesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	criteria, errResp := toCriteria(in)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	pdfBytes, err := h.report.Generate(criteria, Lang(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-categories.pdf"`)
	return c.Send(pdfBytes)
}

// toCriteria converts the bound query into view-engine criteria. Dates are
// calendar dates; DateTo is widened to its end of day by the engine itself.
func toCriteria(in dto.ListCategoriesRequest) (catalog.Criteria, *dto.ErrorResponse) {
	criteria := catalog.Criteria{
		SearchTerm:   in.Search,
		ParentFilter: in.ParentID,
	}
	if in.DateFrom != "" {
		t, err := time.Parse("2006-01-02", in.DateFrom)
		if err != nil {
			return criteria, &dto.ErrorResponse{Code: "INVALID_DATE", Message: "date_from must be 2006-01-02"}
		}
		criteria.DateFrom = &t
	}
	if in.DateTo != "" {
		t, err := time.Parse("2006-01-02", in.DateTo)
		if err != nil {
			return criteria, &dto.ErrorResponse{Code: "INVALID_DATE", Message: "date_to must be 2006-01-02"}
		}
		criteria.DateTo = &t
	}
	return criteria, nil
}
