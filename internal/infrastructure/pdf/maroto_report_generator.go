// Package pdf renders the printable stock-category report: one section per
// root category with its children indented underneath, showing the localized
// pricing method, sales strategy and status of each record.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/usecase"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/catalog"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CategoryReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements usecase.CategoryReportGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{}
}

// GenerateCategoryReport renders the filtered tree and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateCategoryReport(nodes []catalog.Node, lang string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock Categories", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(lang))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(lang))

	for _, n := range nodes {
		m.AddRows(categoryRow(n.Root, lang, false))
		for _, child := range n.Children {
			m.AddRows(categoryRow(child, lang, true))
		}
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow(lang, len(nodes)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(lang string) core.Row {
	title := "Stock Categories Report"
	if lang == "ar" {
		title = "تقرير فئات المخزون"
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(lang string) core.Row {
	labels := []string{"Category", "Pricing Method", "Sales Strategy", "Status", "Created"}
	if lang == "ar" {
		labels = []string{"الفئة", "طريقة التسعير", "استراتيجية البيع", "الحالة", "تاريخ الإنشاء"}
	}
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(h(labels[0], 4), h(labels[1], 2), h(labels[2], 3), h(labels[3], 1), h(labels[4], 2))
}

func categoryRow(c *entity.Category, lang string, child bool) core.Row {
	arabic := lang == "ar"
	name := c.Name(lang)
	left := 0.0
	style := fontstyle.Bold
	if child {
		left = 4
		style = fontstyle.Normal
	}
	status := "Active"
	if arabic {
		status = "نشطة"
	}
	if c.Inactive {
		status = "Inactive"
		if arabic {
			status = "غير نشطة"
		}
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(name, props.Text{Size: 8, Style: style, Top: 1, Left: left})),
		col.New(2).Add(text.New(
			catalog.ResolveLabel(catalog.PricingMethodLabels, string(c.PricingMethod), arabic),
			props.Text{Size: 8, Top: 1},
		)),
		col.New(3).Add(text.New(
			catalog.ResolveLabel(catalog.SalesStrategyLabels, string(c.SalesStrategy), arabic),
			props.Text{Size: 8, Top: 1},
		)),
		col.New(1).Add(text.New(status, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(c.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}

func footerRow(lang string, rootCount int) core.Row {
	label := fmt.Sprintf("%d parent categories", rootCount)
	if lang == "ar" {
		label = fmt.Sprintf("عدد الفئات الرئيسية: %d", rootCount)
	}
	return row.New(6).Add(
		col.New(12).Add(text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}
