// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables and settings files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Loads strict settings files (`LoadFile`, `LoadYAML`) that reject keys
//     which do not name a field.
//   - Runs the struct's own `Validate() error` method, when present, before a
//     configuration is handed out.
//
// # Usage
//
//	var cfg dto.AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Settings files:
//
//	cfg := dto.DefaultAppConfig()
//	err := config.LoadYAML("settings.yaml", &cfg)
//
//	var fromEnvFile dto.AppConfig
//	err = config.LoadFile("settings.env", &fromEnvFile)
//
// In a dotenv settings file keys are case-insensitive (`port=9000` sets
// `PORT`) and process environment variables take precedence over file values.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars or a file into struct.
//   - `ErrInvalidConfig`   – the parsed struct failed its Validate method.
//   - `ErrUnknownKey`      – a settings file holds a key that names no field.
//   - `ErrReadingFile`     – a settings or dotenv file could not be read.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer`      – nil pointer passed to a loader.
//
// Unknown keys and validation failures also carry
// `validator.ValidationErrors`, so callers can list the offending fields.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests or
// `ForceReloadConfig(&cfg)` to reload a particular struct after the process
// environment changes.
package config
