package dto

import (
	"log/slog"

	"github.com/dmitrymomot/dtokit/pkg/secret"
	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// Credentials pairs a username with a password and an API key. Both secrets
// are redacted in every printed, logged or encoded form; use Reveal to read them.
type Credentials struct {
	Username string        `json:"username" validate:"min=3,max=20,pattern_word"`
	Password secret.String `json:"password"`
	APIKey   secret.String `json:"api_key"`
}

func NewCredentials(username, password, apiKey string) (Credentials, error) {
	return New(Credentials{
		Username: username,
		Password: secret.New(password),
		APIKey:   secret.New(apiKey),
	})
}

func (c Credentials) Validate() error {
	return validator.Struct(c)
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.Any("password", c.Password),
		slog.Any("api_key", c.APIKey),
	)
}

func (Credentials) requiredKeys() []string {
	return []string{"username", "password", "api_key"}
}
