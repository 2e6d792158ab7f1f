package response

import (
	"net/url"
	"strconv"
	"strings"
)

// Paging defaults and bounds applied by PageFromQuery.
const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)

// PageFromQuery reads the "page" and "size" query parameters. Missing or
// unparsable values fall back to the defaults, size is clamped to MaxSize.
func PageFromQuery(values url.Values) Pagination {
	page := DefaultPage
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			page = n
		}
	}

	size := DefaultSize
	if raw := values.Get("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			size = min(n, MaxSize)
		}
	}

	return Pagination{Page: page, Size: size}
}

// Sort is one ordering criterion parsed from a query string.
type Sort struct {
	Field      string
	Descending bool
}

// SortFromQuery reads every "sort" query parameter of the form
// "field" or "field,desc" ("asc" is the default direction). Empty fields are
// skipped; order is preserved.
func SortFromQuery(values url.Values) []Sort {
	var sorts []Sort
	for _, raw := range values["sort"] {
		field, direction, _ := strings.Cut(raw, ",")
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		sorts = append(sorts, Sort{
			Field:      field,
			Descending: strings.EqualFold(strings.TrimSpace(direction), "desc"),
		})
	}
	return sorts
}
