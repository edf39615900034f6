package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtokit/pkg/dto"
	"github.com/dmitrymomot/dtokit/pkg/i18n"
	"github.com/dmitrymomot/dtokit/pkg/validator"
)

func TestValidationTranslator(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewValidationTranslator(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "es"}, tr.SupportedLanguages())

	t.Run("struct tag errors", func(t *testing.T) {
		_, err := dto.New(dto.GeoLocation{Latitude: 95, Longitude: 0, Name: "x"})
		require.Error(t, err)

		got := tr.Errors("es", validator.ExtractValidationErrors(err))
		require.Len(t, got, 1)
		assert.Equal(t, "latitude", got[0].Field)
		assert.Equal(t, "debe ser menor o igual que 90", got[0].Message)
	})

	t.Run("cross-field errors", func(t *testing.T) {
		s := dto.SignUp{Username: "neo", Email: "neo@example.com", Password: "SecurePass123!", ConfirmPassword: "nope"}
		_, err := dto.New(s)
		require.Error(t, err)

		got := tr.Errors("de", validator.ExtractValidationErrors(err))
		assert.Equal(t, "password und confirm_password stimmen nicht überein", got[0].Message)
	})

	t.Run("english stays untouched", func(t *testing.T) {
		_, err := dto.New(dto.GeoLocation{Latitude: 95, Name: "x"})
		original := validator.ExtractValidationErrors(err)
		assert.Equal(t, original, tr.Errors("en", original))
	})

	t.Run("incomplete values keep the original message", func(t *testing.T) {
		errs := validator.ValidationErrors{{
			Field:          "status",
			Message:        "must be one of: a, b",
			TranslationKey: "validation.oneof",
		}}
		assert.Equal(t, "must be one of: a, b", tr.Errors("es", errs)[0].Message)
	})

	t.Run("localize error keeps sentinels", func(t *testing.T) {
		_, err := dto.Parse[dto.User]([]byte(`{"username":"bob"}`))
		require.Error(t, err)

		localized := tr.LocalizeError("es", err)
		assert.ErrorIs(t, localized, validator.ErrFieldRequired)
		verrs := validator.ExtractValidationErrors(localized)
		require.NotEmpty(t, verrs)
		for _, e := range verrs {
			assert.Equal(t, "es obligatorio", e.Message)
		}

		plain := errors.New("boom")
		assert.Equal(t, plain, tr.LocalizeError("es", plain))
	})
}
