package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"estate-catalog/internal/domain"
)

// TabFavorites restricts results to favorited listings. Any other tab value
// browses the whole collection.
const TabFavorites = "favorites"

// FilterQuery carries the active filter controls.
type FilterQuery struct {
	Province string
	District string
	Tab      string
	Text     string
}

// Filter narrows the collection through the fixed predicate order: removed
// entries drop first, then province, district, the favorites tab and finally
// the trimmed free-text query, matched case-insensitively against title,
// province, district and description joined by spaces. A district filter
// applies on its own when no province is set. The input's newest-first order
// is preserved; no sorting happens here.
func Filter(listings []domain.Listing, q FilterQuery, favorites []string) []domain.Listing {
	favored := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		favored[id] = struct{}{}
	}

	// Turkish casing so İ/ı fold correctly in queries.
	lower := cases.Lower(language.Turkish)
	needle := lower.String(strings.TrimSpace(q.Text))

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Removed {
			continue
		}
		if q.Province != "" && l.Province != q.Province {
			continue
		}
		if q.District != "" && l.District != q.District {
			continue
		}
		if q.Tab == TabFavorites {
			if _, ok := favored[l.ID]; !ok {
				continue
			}
		}
		if needle != "" {
			haystack := lower.String(l.Title + " " + l.Province + " " + l.District + " " + l.Description)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}
