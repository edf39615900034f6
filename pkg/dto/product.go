package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

type Product struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name" validate:"min=1,max=50"`
	Price      float64    `json:"price" validate:"gt=0,multipleof=0.01"`
	Quantity   int        `json:"quantity" validate:"gte=0"`
	Categories []Category `json:"categories" validate:"dive"`
}

func (p Product) Validate() error {
	return validator.Struct(p)
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

// MarshalJSON always writes categories as a list.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	out := plain(p)
	if out.Categories == nil {
		out.Categories = []Category{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON holds an empty category list as nil.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var in plain
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Categories) == 0 {
		in.Categories = nil
	}
	*p = Product(in)
	return nil
}

func (Product) requiredKeys() []string {
	return []string{"id", "name", "price", "quantity", "categories"}
}
