// Package logger builds *slog.Logger instances for clouch and defines the
// attribute helpers used across its packages.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result in a handler that pulls request-scoped attributes out of the
// context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "clouch"),
//	    logger.WithContextExtractors(clouch.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "page rewritten",
//	    logger.Elements(st.Elements),
//	    logger.Replacements(st.Replacements),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
