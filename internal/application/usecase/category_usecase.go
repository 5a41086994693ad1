package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/dto"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/repository"
)

// CategoryUseCase is the single write path of the category collection. It
// validates input, applies the parent inheritance rule, cascades a root's
// pricing/sales changes to its children and keeps subtree deletes atomic.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Save creates or replaces a category. id empty means create; a caller-supplied
// id that matches an existing record replaces it in place. When the saved
// record is a root, every child has its pricing/sales overwritten to the
// root's new values within the same atomic write. Returns the saved record and
// whether it was newly created.
func (uc *CategoryUseCase) Save(id string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, bool, error) {
	if in.NameEn == "" || in.NameAr == "" {
		return nil, false, domain.ErrInvalidInput
	}
	if !entity.ValidPricingMethods[entity.PricingMethod(in.PricingMethod)] {
		return nil, false, domain.ErrInvalidInput
	}
	if !entity.ValidSalesStrategies[entity.SalesStrategy(in.SalesStrategy)] {
		return nil, false, domain.ErrInvalidInput
	}

	parentID := ""
	if in.ParentID != nil {
		parentID = *in.ParentID
	}

	all, err := uc.repo.List()
	if err != nil {
		return nil, false, err
	}

	if parentID != "" {
		if parentID == id {
			return nil, false, domain.ErrInvalidParent
		}
		parent := findByID(all, parentID)
		if parent == nil || !parent.IsRoot() {
			return nil, false, domain.ErrInvalidParent
		}
		// A root that still has children cannot become a child: the tree is
		// capped at two levels.
		if id != "" {
			for _, c := range all {
				if c.ParentID == id {
					return nil, false, domain.ErrInvalidParent
				}
			}
		}
	}

	var existing *entity.Category
	if id != "" {
		existing = findByID(all, id)
	}

	now := time.Now()
	cat := &entity.Category{
		ID:            id,
		NameEn:        in.NameEn,
		NameAr:        in.NameAr,
		DescEn:        in.DescEn,
		DescAr:        in.DescAr,
		ParentID:      parentID,
		PricingMethod: entity.PricingMethod(in.PricingMethod),
		SalesStrategy: entity.SalesStrategy(in.SalesStrategy),
		Inactive:      in.Inactive,
		Images:        toImages(in.Images),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	if existing != nil {
		cat.CreatedAt = existing.CreatedAt
		if in.Images == nil {
			cat.Images = existing.Images
		}
	}

	// A child never diverges from its root while linked.
	if inh := catalog.ResolveInheritance(parentID, rootsOf(all)); inh.Locked {
		cat.PricingMethod = inh.PricingMethod
		cat.SalesStrategy = inh.SalesStrategy
	}

	batch := []*entity.Category{cat}
	if cat.IsRoot() {
		for _, c := range all {
			if c.ParentID != cat.ID {
				continue
			}
			child := c.Clone()
			child.PricingMethod = cat.PricingMethod
			child.SalesStrategy = cat.SalesStrategy
			child.UpdatedAt = now
			batch = append(batch, child)
		}
	}
	if err := uc.repo.UpsertMany(batch); err != nil {
		return nil, false, err
	}
	resp := toCategoryResponse(cat)
	return &resp, existing == nil, nil
}

// Delete removes the category and all of its children in one atomic step.
// Deleting an unknown id is a benign no-op.
func (uc *CategoryUseCase) Delete(id string) error {
	all, err := uc.repo.List()
	if err != nil {
		return err
	}
	var ids []string
	for _, c := range all {
		if c.ID == id || c.ParentID == id {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return uc.repo.Remove(ids...)
}

// GetByID returns the category or (nil, nil) when it does not exist.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	resp := toCategoryResponse(cat)
	return &resp, nil
}

// GetDetail returns the category with its localized labels and the resolved
// parent name for the detail page. A dangling parent reference degrades to
// the placeholder rather than failing.
func (uc *CategoryUseCase) GetDetail(id, lang string) (*dto.CategoryDetailResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	arabic := lang == "ar"
	detail := &dto.CategoryDetailResponse{
		CategoryResponse:   toCategoryResponse(cat),
		ParentName:         "—",
		PricingMethodLabel: catalog.ResolveLabel(catalog.PricingMethodLabels, string(cat.PricingMethod), arabic),
		SalesStrategyLabel: catalog.ResolveLabel(catalog.SalesStrategyLabels, string(cat.SalesStrategy), arabic),
	}
	if parent, err := uc.GetParent(cat.ID); err != nil {
		return nil, err
	} else if parent != nil {
		if arabic {
			detail.ParentName = parent.NameAr
		} else {
			detail.ParentName = parent.NameEn
		}
	}
	return detail, nil
}

// GetParent resolves the category's parent, or nil when the category is a
// root or the reference dangles (a data-integrity fault that must not fail
// lookups).
func (uc *CategoryUseCase) GetParent(id string) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil || cat == nil {
		return nil, err
	}
	if cat.IsRoot() {
		return nil, nil
	}
	parent, err := uc.repo.GetByID(cat.ParentID)
	if err != nil || parent == nil {
		return nil, err
	}
	resp := toCategoryResponse(parent)
	return &resp, nil
}

// ListRoots returns all top-level categories in collection order.
func (uc *CategoryUseCase) ListRoots() ([]dto.CategoryResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0)
	for _, c := range all {
		if c.IsRoot() {
			out = append(out, toCategoryResponse(c))
		}
	}
	return out, nil
}

// ViewTree recomputes the tree-shaped derived view for the given criteria.
func (uc *CategoryUseCase) ViewTree(criteria catalog.Criteria) ([]dto.CategoryTreeResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	nodes := catalog.BuildView(all, criteria)
	out := make([]dto.CategoryTreeResponse, 0, len(nodes))
	for _, n := range nodes {
		tree := dto.CategoryTreeResponse{
			CategoryResponse: toCategoryResponse(n.Root),
			Children:         make([]dto.CategoryResponse, 0, len(n.Children)),
		}
		for _, c := range n.Children {
			tree.Children = append(tree.Children, toCategoryResponse(c))
		}
		out = append(out, tree)
	}
	return out, nil
}

// ViewFlat recomputes the flat filtered list (the table view of the dashboard).
func (uc *CategoryUseCase) ViewFlat(criteria catalog.Criteria) ([]dto.CategoryResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := catalog.FilterFlat(all, criteria)
	out := make([]dto.CategoryResponse, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Inheritance evaluates the edit-form lock for a candidate parent selection.
func (uc *CategoryUseCase) Inheritance(parentID string) (dto.InheritanceResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return dto.InheritanceResponse{}, err
	}
	inh := catalog.ResolveInheritance(parentID, rootsOf(all))
	return dto.InheritanceResponse{
		PricingMethod: string(inh.PricingMethod),
		SalesStrategy: string(inh.SalesStrategy),
		Locked:        inh.Locked,
	}, nil
}

func findByID(cats []*entity.Category, id string) *entity.Category {
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func rootsOf(cats []*entity.Category) []*entity.Category {
	var roots []*entity.Category
	for _, c := range cats {
		if c.IsRoot() {
			roots = append(roots, c)
		}
	}
	return roots
}

func toImages(in []dto.CategoryImageDTO) []entity.CategoryImage {
	images := make([]entity.CategoryImage, 0, len(in))
	for _, img := range in {
		id := img.ID
		if id == "" {
			id = uuid.New().String()
		}
		images = append(images, entity.CategoryImage{
			ID:          id,
			URL:         img.URL,
			Destination: entity.ImageDestination(img.Destination),
			IsDefault:   img.IsDefault,
		})
	}
	return images
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	var parentID *string
	if c.ParentID != "" {
		p := c.ParentID
		parentID = &p
	}
	images := make([]dto.CategoryImageDTO, 0, len(c.Images))
	for _, img := range c.Images {
		images = append(images, dto.CategoryImageDTO{
			ID:          img.ID,
			URL:         img.URL,
			Destination: string(img.Destination),
			IsDefault:   img.IsDefault,
		})
	}
	return dto.CategoryResponse{
		ID:            c.ID,
		NameEn:        c.NameEn,
		NameAr:        c.NameAr,
		DescEn:        c.DescEn,
		DescAr:        c.DescAr,
		ParentID:      parentID,
		PricingMethod: string(c.PricingMethod),
		SalesStrategy: string(c.SalesStrategy),
		Inactive:      c.Inactive,
		Images:        images,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
