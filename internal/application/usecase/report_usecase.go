package usecase

import (
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/repository"
)

// CategoryReportGenerator renders the filtered category tree as a printable
// document. Implemented by the Maroto PDF adapter.
type CategoryReportGenerator interface {
	GenerateCategoryReport(nodes []catalog.Node, lang string) ([]byte, error)
}

// ReportUseCase produces the downloadable category report.
type ReportUseCase struct {
	repo      repository.CategoryRepository
	generator CategoryReportGenerator
}

// NewReportUseCase builds the use case.
func NewReportUseCase(repo repository.CategoryRepository, generator CategoryReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator}
}

// Generate runs the view engine with the given criteria and renders the result.
func (uc *ReportUseCase) Generate(criteria catalog.Criteria, lang string) ([]byte, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCategoryReport(catalog.BuildView(all, criteria), lang)
}
