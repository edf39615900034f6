package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// DefaultCountry is used when a decoded Address has no country.
const DefaultCountry = "US"

// Address is a postal address with US-style state and ZIP codes.
type Address struct {
	Street    string  `json:"street" validate:"min=1,max=100"`
	City      string  `json:"city" validate:"min=1,max=50"`
	State     string  `json:"state" validate:"pattern_state"`
	ZipCode   string  `json:"zip_code" validate:"pattern_zip"`
	Country   string  `json:"country" validate:"pattern_country"`
	Apartment *string `json:"apartment"`
}

func (a Address) Validate() error {
	return validator.Struct(a)
}

// FullAddress renders the address on one line:
// "street [apartment] city, ST zip, CC".
func (a Address) FullAddress() string {
	parts := []string{a.Street}
	if a.Apartment != nil && *a.Apartment != "" {
		parts = append(parts, *a.Apartment)
	}
	parts = append(parts, fmt.Sprintf("%s, %s %s, %s", a.City, a.State, a.ZipCode, a.Country))
	return strings.Join(parts, " ")
}

func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	p := plain{Country: DefaultCountry}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Address(p)
	return nil
}

func (Address) requiredKeys() []string {
	return []string{"street", "city", "state", "zip_code"}
}
