package dto

import "github.com/dmitrymomot/dtokit/pkg/validator"

// Contact is a person's contact card. Phone numbers use the US
// "555-123-4567" or "(555) 123-4567" forms.
type Contact struct {
	Name    string  `json:"name" validate:"min=1,max=50"`
	Email   string  `json:"email" validate:"email"`
	Phone   string  `json:"phone" validate:"pattern_phone"`
	Website *string `json:"website" validate:"omitnil,http_url"`
	Notes   *string `json:"notes"`
}

func (c Contact) Validate() error {
	return validator.Struct(c)
}

func (Contact) requiredKeys() []string {
	return []string{"name", "email", "phone"}
}
