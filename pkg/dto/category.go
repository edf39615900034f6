package dto

import (
	"encoding/json"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// Category is a node of a category tree. Subcategories are owned children;
// there are no parent links.
type Category struct {
	ID            int        `json:"id" validate:"gt=0"`
	Name          string     `json:"name" validate:"min=1,max=50"`
	Subcategories []Category `json:"subcategories" validate:"dive"`
}

// NewCategory validates a node together with its whole subtree.
func NewCategory(id int, name string, subcategories ...Category) (Category, error) {
	return New(Category{ID: id, Name: name, Subcategories: subcategories})
}

func (c Category) Validate() error {
	return validator.Struct(c)
}

// Depth returns the number of levels in the tree rooted at c; a leaf has depth 1.
func (c Category) Depth() int {
	deepest := 0
	for _, sub := range c.Subcategories {
		deepest = max(deepest, sub.Depth())
	}
	return deepest + 1
}

// Size returns the number of nodes in the tree rooted at c.
func (c Category) Size() int {
	n := 1
	for _, sub := range c.Subcategories {
		n += sub.Size()
	}
	return n
}

// Walk visits c and its descendants depth-first, parents before children.
// Returning false from fn skips the children of that node.
func (c Category) Walk(fn func(level int, node Category) bool) {
	c.walk(0, fn)
}

func (c Category) walk(level int, fn func(int, Category) bool) {
	if !fn(level, c) {
		return
	}
	for _, sub := range c.Subcategories {
		sub.walk(level+1, fn)
	}
}

// MarshalJSON always writes subcategories as a list.
func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	p := plain(c)
	if p.Subcategories == nil {
		p.Subcategories = []Category{}
	}
	return json.Marshal(p)
}

// UnmarshalJSON holds an empty subcategory list as nil, matching NewCategory.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if len(p.Subcategories) == 0 {
		p.Subcategories = nil
	}
	*c = Category(p)
	return nil
}

func (Category) requiredKeys() []string {
	return []string{"id", "name"}
}
