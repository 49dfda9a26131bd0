package icondeck

import (
	"fmt"
	"strings"
)

// CategoryAll is the synthetic category that matches every icon.
const CategoryAll = "all"

// Icon represents one discovered SVG icon. Icons are immutable once loaded.
type Icon struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	SVG      string `json:"svg"`
	Path     string `json:"path"`
}

// Validate returns an error if the icon contains invalid fields.
func (i *Icon) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "icon name required")
	}
	if i.Category == "" {
		return Errorf(EINVALID, "icon category required")
	}
	return nil
}

// Collection is the ordered set of icons produced by a discovery run.
// A successful run replaces the previous collection wholesale; collections
// are never mutated in place.
type Collection []Icon

// Filter selects a subset of a collection. The zero value matches
// everything.
type Filter struct {
	// Query is matched as a case-insensitive substring against icon
	// names and categories.
	Query string `json:"query"`

	// Category restricts results to a single category. Empty or
	// CategoryAll matches all categories.
	Category string `json:"category"`
}

// FilterIcons returns the icons matching the filter, preserving order.
// The query is a case-insensitive substring match against icon names, and
// against categories when no specific category is selected. Once a category
// is selected its own text is excluded from query matching, since every
// record in the view would trivially match it. The input collection is
// never modified.
func FilterIcons(icons Collection, filter Filter) Collection {
	category := filter.Category
	if category == "" {
		category = CategoryAll
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make(Collection, 0, len(icons))
	for _, icon := range icons {
		if category != CategoryAll && icon.Category != category {
			continue
		}
		if query != "" {
			nameMatch := strings.Contains(strings.ToLower(icon.Name), query)
			categoryMatch := category == CategoryAll &&
				strings.Contains(strings.ToLower(icon.Category), query)
			if !nameMatch && !categoryMatch {
				continue
			}
		}
		out = append(out, icon)
	}
	return out
}

// Categories returns the distinct categories present in the collection in
// first-appearance order, with CategoryAll prepended.
func Categories(icons Collection) []string {
	seen := make(map[string]bool)
	out := []string{CategoryAll}
	for _, icon := range icons {
		if icon.Category == "" || seen[icon.Category] {
			continue
		}
		seen[icon.Category] = true
		out = append(out, icon.Category)
	}
	return out
}

// EmbedSnippet returns an example HTML snippet for embedding the icon from
// its raw content URL.
func EmbedSnippet(icon Icon, rawURL string) string {
	return fmt.Sprintf("<img src=%q alt=%q width=\"24\" height=\"24\">", rawURL, icon.Name)
}
