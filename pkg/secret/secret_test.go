package secret_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dtokit/pkg/secret"
)

const plain = "sk-live-9f8e7d6c"

func TestString_Redaction(t *testing.T) {
	t.Parallel()

	s := secret.New(plain)

	t.Run("fmt verbs", func(t *testing.T) {
		for _, format := range []string{"%s", "%v", "%+v", "%#v", "%q", "%x", "%d"} {
			out := fmt.Sprintf(format, s)
			assert.NotContains(t, out, plain, format)
			assert.Contains(t, out, secret.Redacted, format)
		}
	})

	t.Run("inside structs", func(t *testing.T) {
		type creds struct {
			User string
			Key  secret.String
		}
		out := fmt.Sprintf("%+v", creds{User: "john", Key: s})
		assert.NotContains(t, out, plain)
		assert.Contains(t, out, "john")
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(map[string]any{"key": s})
		require.NoError(t, err)
		assert.JSONEq(t, `{"key":"**********"}`, string(data))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(map[string]any{"key": s})
		require.NoError(t, err)
		assert.NotContains(t, string(data), plain)
		assert.Contains(t, string(data), secret.Redacted)
	})

	t.Run("slog", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		log.Info("login", "api_key", s)
		assert.NotContains(t, buf.String(), plain)
		assert.Contains(t, buf.String(), secret.Redacted)
	})
}

func TestString_Reveal(t *testing.T) {
	t.Parallel()

	s := secret.New(plain)
	assert.Equal(t, plain, s.Reveal())
	assert.Equal(t, 16, s.Len())
	assert.False(t, s.IsZero())
	assert.True(t, secret.String{}.IsZero())
}

func TestString_Equal(t *testing.T) {
	t.Parallel()

	a := secret.New("one")
	b := secret.New("two")
	assert.True(t, a.Equal(secret.New("one")))
	assert.False(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String(), "printed forms never distinguish secrets")
}

func TestString_Decode(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		var v struct {
			Key secret.String `json:"key"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"key":"`+plain+`"}`), &v))
		assert.Equal(t, plain, v.Key.Reveal())
	})

	t.Run("json rejects non-strings", func(t *testing.T) {
		var s secret.String
		assert.Error(t, json.Unmarshal([]byte(`42`), &s))
	})

	t.Run("yaml", func(t *testing.T) {
		var v struct {
			Key secret.String `yaml:"key"`
		}
		require.NoError(t, yaml.Unmarshal([]byte("key: "+plain+"\n"), &v))
		assert.Equal(t, plain, v.Key.Reveal())
	})

	t.Run("text", func(t *testing.T) {
		var s secret.String
		require.NoError(t, s.UnmarshalText([]byte(plain)))
		assert.Equal(t, plain, s.Reveal())
	})
}
