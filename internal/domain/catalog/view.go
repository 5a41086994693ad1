package catalog

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/entity"
)

// Criteria is the combined search/filter/date-range input of the view engine.
// All fields are optional and combine with AND semantics.
type Criteria struct {
	SearchTerm   string     // case-insensitive on NameEn, exact substring on NameAr
	ParentFilter string     // restrict to the subtree of this root id
	DateFrom     *time.Time // inclusive lower bound on CreatedAt
	DateTo       *time.Time // inclusive, extended to the end of its calendar day
}

// Node is one root of the derived view together with its surviving children,
// both in original collection order.
type Node struct {
	Root     *entity.Category
	Children []*entity.Category
}

var foldCaser = cases.Fold()

// BuildView computes the tree-shaped derived view. It is pure: it never
// mutates its inputs and repeated calls with the same inputs yield the same
// structure, so it is safe to recompute on every render.
//
// The parent filter and the date bounds apply per category; the search term
// then applies with inclusive-parent semantics over the survivors: a root is
// kept when its own name matches or any surviving child's name matches, and a
// kept root keeps all of its surviving children, not just the matching ones.
// A root excluded by the date bounds takes its whole subtree with it.
func BuildView(categories []*entity.Category, criteria Criteria) []Node {
	term := strings.TrimSpace(criteria.SearchTerm)
	foldedTerm := foldCaser.String(term)

	childrenOf := make(map[string][]*entity.Category)
	var roots []*entity.Category
	for _, c := range categories {
		if c.IsRoot() {
			roots = append(roots, c)
			continue
		}
		if inDateRange(c, criteria) {
			childrenOf[c.ParentID] = append(childrenOf[c.ParentID], c)
		}
	}

	var view []Node
	for _, root := range roots {
		if criteria.ParentFilter != "" && root.ID != criteria.ParentFilter {
			continue
		}
		if !inDateRange(root, criteria) {
			continue
		}
		children := childrenOf[root.ID]
		if term != "" && !subtreeMatches(root, children, term, foldedTerm) {
			continue
		}
		view = append(view, Node{Root: root, Children: children})
	}
	return view
}

// FilterFlat applies the same criteria record by record, without the
// inclusive-parent rule, producing the flat list the category table renders.
func FilterFlat(categories []*entity.Category, criteria Criteria) []*entity.Category {
	term := strings.TrimSpace(criteria.SearchTerm)
	foldedTerm := foldCaser.String(term)

	var out []*entity.Category
	for _, c := range categories {
		if criteria.ParentFilter != "" && c.ID != criteria.ParentFilter && c.ParentID != criteria.ParentFilter {
			continue
		}
		if term != "" && !nameMatches(c, term, foldedTerm) {
			continue
		}
		if !inDateRange(c, criteria) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func subtreeMatches(root *entity.Category, children []*entity.Category, term, foldedTerm string) bool {
	if nameMatches(root, term, foldedTerm) {
		return true
	}
	for _, c := range children {
		if nameMatches(c, term, foldedTerm) {
			return true
		}
	}
	return false
}

// nameMatches folds the English name for case-insensitive matching; the
// Arabic name is matched as an exact substring (Arabic has no case).
func nameMatches(c *entity.Category, term, foldedTerm string) bool {
	if strings.Contains(foldCaser.String(c.NameEn), foldedTerm) {
		return true
	}
	return strings.Contains(c.NameAr, term)
}

func inDateRange(c *entity.Category, criteria Criteria) bool {
	if criteria.DateFrom != nil && c.CreatedAt.Before(*criteria.DateFrom) {
		return false
	}
	if criteria.DateTo != nil && c.CreatedAt.After(endOfDay(*criteria.DateTo)) {
		return false
	}
	return true
}

// endOfDay pushes the bound to 23:59:59.999999999 of its calendar day so a
// category created at any time within the DateTo day is included.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
