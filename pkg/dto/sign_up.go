package dto

import (
	"encoding/json"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/dtokit/pkg/secret"
	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// SignUp is a registration form. ConfirmPassword is accepted on input but
// never written by MarshalJSON, Dump or LogValue.
type SignUp struct {
	Username        string `json:"username" validate:"min=3,max=20,pattern_word"`
	Email           string `json:"email" validate:"email"`
	Password        string `json:"password" validate:"min=8,max=50"`
	ConfirmPassword string `json:"confirm_password"`
}

func (s SignUp) Validate() error {
	errs := validator.ExtractValidationErrors(validator.Struct(s))

	// Composition is checked only once the length rules hold.
	if !errs.Has("password") {
		if err := validator.ApplyFirst(validator.PasswordComposition("password", s.Password)...); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
		}
	}
	if !errs.IsEmpty() {
		return errs
	}

	return validator.ApplyFirst(
		validator.Equal("password", s.Password, "confirm_password", s.ConfirmPassword),
	)
}

// HashPassword returns the bcrypt hash of the password. A cost of 0 selects
// bcrypt.DefaultCost.
func (s SignUp) HashPassword(cost int) ([]byte, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(s.Password), cost)
}

func (s SignUp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Username: s.Username,
		Email:    s.Email,
		Password: s.Password,
	})
}

func (s SignUp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", s.Username),
		slog.String("email", s.Email),
		slog.Any("password", secret.New(s.Password)),
	)
}

func (SignUp) requiredKeys() []string {
	return []string{"username", "email", "password", "confirm_password"}
}
