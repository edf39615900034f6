package secret

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Redacted is rendered in place of every secret value.
const Redacted = "**********"

// String holds a sensitive string. The zero value is an empty secret.
type String struct {
	value string
}

// New wraps value.
func New(value string) String {
	return String{value: value}
}

// Reveal returns the wrapped value.
func (s String) Reveal() string {
	return s.value
}

func (s String) IsZero() bool {
	return s.value == ""
}

// Len returns the number of characters of the wrapped value.
func (s String) Len() int {
	return utf8.RuneCountInString(s.value)
}

// Equal compares two secrets in constant time.
func (s String) Equal(other String) bool {
	return subtle.ConstantTimeCompare([]byte(s.value), []byte(other.value)) == 1
}

func (s String) String() string {
	return Redacted
}

func (s String) GoString() string {
	return "secret.String(" + Redacted + ")"
}

// Format renders the marker for every verb, including %x and %q.
func (s String) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprint(f, s.GoString())
		return
	}
	_, _ = fmt.Fprint(f, Redacted)
}

func (s String) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

func (s *String) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.value = v
	return nil
}

func (s String) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

func (s *String) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}

func (s String) MarshalYAML() (any, error) {
	return Redacted, nil
}

func (s *String) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	s.value = v
	return nil
}
