package response

// Pagination describes the position of a page inside a larger result set.
// Page is 0-indexed. TotalElements and TotalPages stay nil until a total is
// known.
type Pagination struct {
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements *int64 `json:"total_elements"`
	TotalPages    *int64 `json:"total_pages"`
}

// NewPagination creates a Pagination with the given page and size. A
// non-positive size falls back to DefaultSize, a negative page to 0.
func NewPagination(page, size int) Pagination {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	return Pagination{Page: page, Size: size}
}

// WithTotal back-fills TotalElements and derives TotalPages as
// ceil(total / size). With a non-positive size only the total is recorded.
func (p Pagination) WithTotal(totalElements int64) Pagination {
	p.TotalElements = &totalElements
	if p.Size > 0 {
		totalPages := (totalElements + int64(p.Size) - 1) / int64(p.Size)
		p.TotalPages = &totalPages
	}
	return p
}
