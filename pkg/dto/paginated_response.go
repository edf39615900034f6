package dto

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// PaginatedResponse is one page of items of any entity type. Each item is
// validated by its own Validate method; the page adds only its metadata rules.
type PaginatedResponse[T Entity] struct {
	Items    []T `json:"items"`
	Total    int `json:"total" validate:"gte=0"`
	Page     int `json:"page" validate:"gte=1"`
	PageSize int `json:"page_size" validate:"gte=1"`
}

func NewPage[T Entity](items []T, total, page, pageSize int) (PaginatedResponse[T], error) {
	return New(PaginatedResponse[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (p PaginatedResponse[T]) Validate() error {
	errs := validator.ExtractValidationErrors(validator.Struct(p))
	for i, item := range p.Items {
		if err := item.Validate(); err != nil {
			nested := validator.Nest(fmt.Sprintf("items[%d]", i), err)
			verrs := validator.ExtractValidationErrors(nested)
			if verrs == nil {
				return nested
			}
			errs = append(errs, verrs...)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// TotalPages is ceil(Total / PageSize), or 0 when there are no items at all.
func (p PaginatedResponse[T]) TotalPages() int {
	if p.Total == 0 || p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

func (p PaginatedResponse[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

func (p PaginatedResponse[T]) HasPrevious() bool {
	return p.Page > 1
}

// pageJSON is the wire form of PaginatedResponse.
type pageJSON[T Entity] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// MarshalJSON always writes items as a list.
func (p PaginatedResponse[T]) MarshalJSON() ([]byte, error) {
	out := pageJSON[T](p)
	if out.Items == nil {
		out.Items = []T{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON holds an empty item list as nil.
func (p *PaginatedResponse[T]) UnmarshalJSON(data []byte) error {
	var in pageJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Items) == 0 {
		in.Items = nil
	}
	*p = PaginatedResponse[T](in)
	return nil
}

func (PaginatedResponse[T]) requiredKeys() []string {
	return []string{"items", "total", "page", "page_size"}
}
