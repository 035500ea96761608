package catalog

import (
	"sort"
	"strings"

	"novelnook/models"
)

// Query narrows and orders a catalog listing.
type Query struct {
	Category string
	Search   string // matched against title and author
	Featured bool
	SortBy   string // "price", "rating", "title"
	Desc     bool
}

func applyQuery(in []models.Book, q Query) []models.Book {
	out := make([]models.Book, 0, len(in))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, b := range in {
		if q.Category != "" && q.Category != "All" && b.Category != q.Category {
			continue
		}
		if q.Featured && !b.Featured {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.Title), needle) &&
			!strings.Contains(strings.ToLower(b.Author), needle) {
			continue
		}
		out = append(out, b)
	}

	if q.SortBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if q.Desc {
				a, b = b, a
			}
			switch q.SortBy {
			case "price":
				return a.Price < b.Price
			case "rating":
				return a.Rating < b.Rating
			default:
				return a.Title < b.Title
			}
		})
	}
	return out
}
