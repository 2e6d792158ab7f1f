// Package response defines the envelope every Phoenix endpoint answers with:
// a payload plus optional pagination, serialized as
// {"data": ..., "pagination": ...}.
package response

// Response is the generic API envelope.
type Response[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination"`
}

// OK wraps data in an envelope without pagination.
func OK[T any](data T) Response[T] {
	return Response[T]{Data: data}
}

// OKWithPagination wraps a page of data together with a caller-built
// Pagination, taken as-is.
func OKWithPagination[T any](data []T, pagination Pagination) Response[[]T] {
	return Response[[]T]{Data: data, Pagination: &pagination}
}

// OKFromPage wraps a page of data and, when totalElements is known,
// back-fills the pagination totals (total_pages = ceil(total / size) for a
// positive size). A nil totalElements leaves the pagination untouched.
// The page data itself is not validated against the pagination bounds.
func OKFromPage[T any](pageData []T, pagination Pagination, totalElements *int64) Response[[]T] {
	if totalElements != nil {
		pagination = pagination.WithTotal(*totalElements)
	}
	return Response[[]T]{Data: pageData, Pagination: &pagination}
}
