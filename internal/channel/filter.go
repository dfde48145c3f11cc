package channel

import (
	"fmt"
	"sort"
	"strings"
)

// All selects every category.
const All = "All"

// Criteria is the active filter selection.
type Criteria struct {
	Query    string
	Bundle   Bundle
	Category string
}

// DefaultCriteria matches everything.
func DefaultCriteria() Criteria {
	return Criteria{Bundle: BundleAll, Category: All}
}

// Match reports whether c passes all three predicates.
func (cr Criteria) Match(c Channel) bool {
	q := strings.ToLower(strings.TrimSpace(cr.Query))
	if q != "" &&
		!strings.Contains(strings.ToLower(c.Name), q) &&
		!strings.Contains(strings.ToLower(c.Number), q) {
		return false
	}
	if cr.Bundle != BundleAll && cr.Bundle != "" && !c.HasBundle(cr.Bundle) {
		return false
	}
	if cr.Category != All && cr.Category != "" && c.Category != cr.Category {
		return false
	}
	return true
}

// Filter returns the channels matching cr in their original order.
// The input slice is not modified.
func Filter(list []Channel, cr Criteria) []Channel {
	out := make([]Channel, 0, len(list))
	for _, c := range list {
		if cr.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories of list, sorted, with
// All first. Filter selections have no influence on it.
func Categories(list []Channel) []string {
	seen := make(map[string]bool, len(list))
	cats := make([]string, 0, len(list))
	for _, c := range list {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		cats = append(cats, c.Category)
	}
	sort.Strings(cats)
	return append([]string{All}, cats...)
}

// Summary is the result-count line.
func Summary(count int, loading bool) string {
	if loading {
		return "Connecting to Database..."
	}
	if count == 1 {
		return "Showing 1 channel"
	}
	return fmt.Sprintf("Showing %d channels", count)
}
