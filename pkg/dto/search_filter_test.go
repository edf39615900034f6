package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtokit/pkg/dto"
)

func ptr[T any](v T) *T { return &v }

func TestSearchFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty filter", func(t *testing.T) {
		f, err := dto.New(dto.SearchFilter{})
		require.NoError(t, err)
		assert.False(t, f.HasFilters())
		assert.Empty(t, f.ToQueryParams())
	})

	t.Run("present criteria only", func(t *testing.T) {
		f, err := dto.New(dto.SearchFilter{
			Query:      ptr("laptop"),
			MinPrice:   ptr(100.0),
			MaxPrice:   ptr(1500.5),
			Categories: []string{"electronics", "computers"},
			SortBy:     ptr("price"),
		})
		require.NoError(t, err)
		assert.True(t, f.HasFilters())
		assert.Equal(t, map[string]any{
			"query":      "laptop",
			"min_price":  100.0,
			"max_price":  1500.5,
			"categories": []string{"electronics", "computers"},
			"sort_by":    "price",
		}, f.ToQueryParams())

		values := f.URLValues()
		assert.Equal(t, []string{"electronics", "computers"}, values["categories"])
		assert.Equal(t, "1500.5", values.Get("max_price"))
		assert.False(t, values.Has("in_stock"))
	})

	t.Run("empty list is a present criterion", func(t *testing.T) {
		f := dto.SearchFilter{Categories: []string{}}
		assert.True(t, f.HasFilters())
		assert.Contains(t, f.ToQueryParams(), "categories")
	})

	t.Run("false is a present criterion", func(t *testing.T) {
		f := dto.SearchFilter{InStock: ptr(false)}
		assert.Equal(t, map[string]any{"in_stock": false}, f.ToQueryParams())
	})

	t.Run("min above max", func(t *testing.T) {
		_, err := dto.New(dto.SearchFilter{MinPrice: ptr(200.0), MaxPrice: ptr(100.0)})
		verrs := requireFieldErrors(t, err, "min_price")
		assert.Equal(t, "min_price must be less than or equal to max_price", verrs[0].Message)

		_, err = dto.New(dto.SearchFilter{MinPrice: ptr(100.0), MaxPrice: ptr(100.0)})
		require.NoError(t, err)
	})

	t.Run("field rules", func(t *testing.T) {
		_, err := dto.New(dto.SearchFilter{
			MinPrice:  ptr(0.0),
			MaxPrice:  ptr(10.001),
			SortBy:    ptr("rating"),
			SortOrder: ptr("up"),
		})
		requireFieldErrors(t, err, "min_price", "max_price", "sort_by", "sort_order")
	})

	t.Run("round trip keeps absence", func(t *testing.T) {
		f := dto.SearchFilter{Query: ptr("desk"), InStock: ptr(true)}
		got := roundTrip(t, f)
		assert.Equal(t, f, got)
		assert.Nil(t, got.Categories)
	})
}
