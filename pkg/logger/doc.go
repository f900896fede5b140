// Package logger builds the *slog.Logger used by the guard and validate
// evaluators and provides attribute helpers that keep field names consistent
// when outcomes and failures are logged.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "billing"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	g := guard.New(guard.WithLogger(log))
//	v := validate.New(validate.WithLogger(log))
//
//	log.Info("order rejected",
//	    logger.Failures(res.Failures()),
//	    logger.Kind(res.Kind()),
//	)
//
// # Configuration
//
//   • WithDevelopment / WithStaging / WithProduction – defaults per environment.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   • WithLevel – minimum slog.Level. ParseLevel and ParseFormat read them from strings.
//   • WithOutput – destination writer.
//   • WithAttr – static attributes on every record.
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("checked", logger.Error(err))
//
// is safe when err is nil.
package logger
