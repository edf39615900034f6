package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

type node struct {
	ID       int    `json:"id" validate:"gt=0"`
	Name     string `json:"name" validate:"min=1,max=50"`
	Children []node `json:"children" validate:"dive"`
}

type lineItem struct {
	SKU   string  `json:"sku" validate:"pattern_word"`
	Price float64 `json:"price" validate:"gt=0,multipleof=0.01"`
}

type basket struct {
	Status  string     `json:"status" validate:"oneof=open closed"`
	Items   []lineItem `json:"items" validate:"min=1,dive"`
	Zip     string     `json:"zip" validate:"pattern_zip"`
	Comment *string    `json:"comment,omitempty" validate:"omitempty,max=5"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("passes for a valid struct", func(t *testing.T) {
		b := basket{
			Status: "open",
			Items:  []lineItem{{SKU: "sku_1", Price: 999.99}},
			Zip:    "12345-6789",
		}
		assert.NoError(t, validator.Struct(b))
		assert.NoError(t, validator.Struct(&b))
	})

	t.Run("reports json paths relative to the root", func(t *testing.T) {
		comment := "too long comment"
		b := basket{
			Status:  "lost",
			Items:   []lineItem{{SKU: "ok", Price: 1}, {SKU: "bad sku", Price: 0.001}},
			Zip:     "1234",
			Comment: &comment,
		}

		errs := validator.ExtractValidationErrors(validator.Struct(b))
		require.NotNil(t, errs)
		assert.True(t, errs.Has("status"))
		assert.True(t, errs.Has("items[1].sku"))
		assert.True(t, errs.Has("items[1].price"))
		assert.True(t, errs.Has("zip"))
		assert.True(t, errs.Has("comment"))
		assert.False(t, errs.Has("items[0].sku"))

		assert.Equal(t, []string{"must be one of: open, closed"}, errs.Get("status"))
		assert.Equal(t, []string{"must be a multiple of 0.01"}, errs.Get("items[1].price"))
		assert.Equal(t, []string{`must match pattern ^\d{5}(-\d{4})?$`}, errs.Get("zip"))
		assert.Equal(t, []string{"must be at most 5 characters long"}, errs.Get("comment"))
	})

	t.Run("reports empty collections", func(t *testing.T) {
		errs := validator.ExtractValidationErrors(validator.Struct(basket{Status: "open", Zip: "12345"}))
		require.NotNil(t, errs)
		assert.Equal(t, []string{"must have at least 1 items"}, errs.Get("items"))
	})

	t.Run("recurses through self-referential slices", func(t *testing.T) {
		tree := node{ID: 1, Name: "root", Children: []node{
			{ID: 2, Name: "a", Children: []node{{ID: 0, Name: "deep"}}},
		}}

		errs := validator.ExtractValidationErrors(validator.Struct(tree))
		require.Len(t, errs, 1)
		assert.Equal(t, "children[0].children[0].id", errs[0].Field)
		assert.Equal(t, "must be greater than 0", errs[0].Message)
		assert.Equal(t, "validation.gt", errs[0].TranslationKey)
	})
}

func TestVar(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Var("email", "john@example.com", "email"))

	errs := validator.ExtractValidationErrors(validator.Var("email", "not-an-email", "email"))
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "must be a valid email address", errs[0].Message)
}

func TestIsMultipleOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value, step float64
		want        bool
	}{
		{999.99, 0.01, true},
		{29.99, 0.01, true},
		{0.1, 0.01, true},
		{10, 0.01, true},
		{0.001, 0.01, false},
		{19.995, 0.01, false},
		{5, 0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.IsMultipleOf(tt.value, tt.step), "%v / %v", tt.value, tt.step)
	}
}
