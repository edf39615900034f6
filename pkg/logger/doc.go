// Package logger builds *slog.Logger values from functional options and adds
// helper attribute constructors for validation results and entities.
//
// New picks a handler by Format: JSON through slog.NewJSONHandler, or
// human-readable text through github.com/lmittmann/tint (colored only when
// writing to a terminal). Every handler redacts attributes whose key is in
// the redaction list (password, api_key, secret_key and similar), so a raw
// secret passed by mistake is never written. The handler is wrapped in
// LogHandlerDecorator when ContextExtractor callbacks are registered.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, cfg.AppName),
//	    logger.WithLevel(cfg.SlogLevel()),
//	)
//	logger.SetAsDefault(log)
//
//	if _, err := dto.Parse[dto.Order](body); err != nil {
//	    log.Warn("order rejected", logger.ValidationErrors(err))
//	}
//
// # Configuration
//
//   - WithDevelopment / WithProduction / WithEnvironment – defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum slog.Level.
//   - WithAttr – static attributes.
//   - WithRedactedKeys – extra keys to redact.
//   - WithContextExtractors / WithContextValue – attributes from context.
//
// Error, Errors and ValidationErrors return an empty Attr for a nil error, so
// they can be passed without a nil check.
package logger
