package dto

import (
	"net/url"
	"strconv"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// SearchFilter holds optional product search criteria. A nil field means the
// criterion is absent; a non-nil empty Categories slice is a present, empty list.
type SearchFilter struct {
	Query      *string  `json:"query"`
	MinPrice   *float64 `json:"min_price" validate:"omitnil,gt=0,multipleof=0.01"`
	MaxPrice   *float64 `json:"max_price" validate:"omitnil,gt=0,multipleof=0.01"`
	Categories []string `json:"categories"`
	InStock    *bool    `json:"in_stock"`
	SortBy     *string  `json:"sort_by" validate:"omitnil,oneof=price name date"`
	SortOrder  *string  `json:"sort_order" validate:"omitnil,oneof=asc desc"`
}

func (f SearchFilter) Validate() error {
	if err := validator.Struct(f); err != nil {
		return err
	}

	if f.MinPrice != nil && f.MaxPrice != nil {
		return validator.ApplyFirst(
			validator.LessOrEqual("min_price", *f.MinPrice, "max_price", *f.MaxPrice),
		)
	}
	return nil
}

// HasFilters reports whether any criterion is present.
func (f SearchFilter) HasFilters() bool {
	return f.Query != nil || f.MinPrice != nil || f.MaxPrice != nil ||
		f.Categories != nil || f.InStock != nil || f.SortBy != nil || f.SortOrder != nil
}

// ToQueryParams returns the present criteria keyed by their JSON names.
func (f SearchFilter) ToQueryParams() map[string]any {
	params := make(map[string]any)
	if f.Query != nil {
		params["query"] = *f.Query
	}
	if f.MinPrice != nil {
		params["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		params["max_price"] = *f.MaxPrice
	}
	if f.Categories != nil {
		params["categories"] = f.Categories
	}
	if f.InStock != nil {
		params["in_stock"] = *f.InStock
	}
	if f.SortBy != nil {
		params["sort_by"] = *f.SortBy
	}
	if f.SortOrder != nil {
		params["sort_order"] = *f.SortOrder
	}
	return params
}

// URLValues encodes the present criteria as a query string; categories
// repeat once per value.
func (f SearchFilter) URLValues() url.Values {
	values := make(url.Values)
	for key, v := range f.ToQueryParams() {
		switch val := v.(type) {
		case string:
			values.Set(key, val)
		case float64:
			values.Set(key, strconv.FormatFloat(val, 'f', -1, 64))
		case bool:
			values.Set(key, strconv.FormatBool(val))
		case []string:
			for _, item := range val {
				values.Add(key, item)
			}
		}
	}
	return values
}
