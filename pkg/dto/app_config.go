package dto

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/dmitrymomot/dtokit/pkg/secret"
	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// MinSecretKeyLen is the shortest accepted AppConfig.SecretKey.
const MinSecretKeyLen = 32

// DatabaseURLSchemes are the accepted AppConfig.DatabaseURL prefixes.
var DatabaseURLSchemes = []string{"postgresql://", "mysql://", "sqlite:///"}

// AppConfig holds application settings. It is strict: decoding rejects keys
// that do not name a field. Load it from the environment or a dotenv file
// with the config package, or decode it with Parse.
type AppConfig struct {
	AppName        string        `json:"app_name" yaml:"app_name" env:"APP_NAME" envDefault:"MyApp" validate:"min=1"`
	Environment    string        `json:"environment" yaml:"environment" env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development production"`
	Debug          bool          `json:"debug" yaml:"debug" env:"DEBUG" envDefault:"false"`
	Host           string        `json:"host" yaml:"host" env:"HOST" envDefault:"localhost" validate:"min=1"`
	Port           int           `json:"port" yaml:"port" env:"PORT" envDefault:"8000" validate:"gte=1024,lte=65535"`
	DatabaseURL    string        `json:"database_url" yaml:"database_url" env:"DATABASE_URL"`
	APIKey         secret.String `json:"api_key" yaml:"api_key" env:"API_KEY"`
	SecretKey      secret.String `json:"secret_key" yaml:"secret_key" env:"SECRET_KEY"`
	MaxConnections int           `json:"max_connections" yaml:"max_connections" env:"MAX_CONNECTIONS" envDefault:"10" validate:"gt=0"`
	Timeout        float64       `json:"timeout" yaml:"timeout" env:"TIMEOUT" envDefault:"30" validate:"gt=0"`
	LogLevel       string        `json:"log_level" yaml:"log_level" env:"LOG_LEVEL" envDefault:"INFO" validate:"oneof=DEBUG INFO WARNING ERROR CRITICAL"`
}

// DefaultAppConfig returns the defaults of every optional setting.
// DatabaseURL, APIKey and SecretKey have no default.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:        "MyApp",
		Environment:    "development",
		Host:           "localhost",
		Port:           8000,
		MaxConnections: 10,
		Timeout:        30,
		LogLevel:       "INFO",
	}
}

func (c AppConfig) Validate() error {
	errs := validator.ExtractValidationErrors(validator.Struct(c))
	if err := validator.Apply(
		validator.HasAnyPrefix("database_url", c.DatabaseURL, DatabaseURLSchemes...),
		validator.RequiredString("api_key", c.APIKey.Reveal()),
		validator.MinLen("secret_key", c.SecretKey.Reveal(), MinSecretKeyLen),
	); err != nil {
		errs = append(errs, validator.ExtractValidationErrors(err)...)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps LogLevel onto slog levels; CRITICAL is reported as error.
func (c AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING":
		return slog.LevelWarn
	case "ERROR", "CRITICAL":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UnmarshalJSON starts from DefaultAppConfig and rejects unknown keys.
func (c *AppConfig) UnmarshalJSON(data []byte) error {
	type plain AppConfig
	p := plain(DefaultAppConfig())

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return err
	}
	*c = AppConfig(p)
	return nil
}

func (AppConfig) requiredKeys() []string {
	return []string{"database_url", "api_key", "secret_key"}
}
