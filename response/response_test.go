package response_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phoenix-platform/sucrim/response"
)

func total(n int64) *int64 { return &n }

func TestOK(t *testing.T) {
	resp := response.OK(map[string]string{"id": "42"})
	require.Nil(t, resp.Pagination)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{"data":{"id":"42"},"pagination":null}`, string(raw))
}

func TestOKWithPagination(t *testing.T) {
	pagination := response.NewPagination(2, 25)
	resp := response.OKWithPagination([]string{"a", "b"}, pagination)

	require.NotNil(t, resp.Pagination)
	require.Equal(t, 2, resp.Pagination.Page)
	require.Equal(t, 25, resp.Pagination.Size)
	// taken as-is: no totals invented
	require.Nil(t, resp.Pagination.TotalElements)
	require.Nil(t, resp.Pagination.TotalPages)
}

func TestOKFromPageTotals(t *testing.T) {
	tests := []struct {
		name             string
		size             int
		totalElements    *int64
		expectTotalPages *int64
	}{
		{name: "partial last page", size: 10, totalElements: total(23), expectTotalPages: total(3)},
		{name: "exact fit", size: 10, totalElements: total(20), expectTotalPages: total(2)},
		{name: "empty result", size: 10, totalElements: total(0), expectTotalPages: total(0)},
		{name: "single element", size: 10, totalElements: total(1), expectTotalPages: total(1)},
		{name: "no total supplied", size: 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pagination := response.NewPagination(0, test.size)
			resp := response.OKFromPage([]int{1, 2, 3}, pagination, test.totalElements)

			require.NotNil(t, resp.Pagination)
			if test.totalElements == nil {
				require.Nil(t, resp.Pagination.TotalElements)
				require.Nil(t, resp.Pagination.TotalPages)
				return
			}
			require.Equal(t, *test.totalElements, *resp.Pagination.TotalElements)
			require.Equal(t, *test.expectTotalPages, *resp.Pagination.TotalPages)
		})
	}
}

func TestPaginationJSONNames(t *testing.T) {
	resp := response.OKFromPage([]int{1}, response.NewPagination(1, 10), total(11))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[1],"pagination":{"page":1,"size":10,"total_elements":11,"total_pages":2}}`, string(raw))
}

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		expectPage int
		expectSize int
	}{
		{name: "defaults", query: "", expectPage: 0, expectSize: 10},
		{name: "explicit", query: "page=3&size=25", expectPage: 3, expectSize: 25},
		{name: "garbage falls back", query: "page=x&size=y", expectPage: 0, expectSize: 10},
		{name: "negative page falls back", query: "page=-1", expectPage: 0, expectSize: 10},
		{name: "zero size falls back", query: "size=0", expectPage: 0, expectSize: 10},
		{name: "size clamped", query: "size=5000", expectPage: 0, expectSize: 100},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			values, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			pagination := response.PageFromQuery(values)
			require.Equal(t, test.expectPage, pagination.Page)
			require.Equal(t, test.expectSize, pagination.Size)
		})
	}
}

func TestSortFromQuery(t *testing.T) {
	values, err := url.ParseQuery("sort=name,desc&sort=age&sort=,desc&sort=city%2CASC")
	require.NoError(t, err)

	sorts := response.SortFromQuery(values)
	require.Equal(t, []response.Sort{
		{Field: "name", Descending: true},
		{Field: "age"},
		{Field: "city"},
	}, sorts)
}
