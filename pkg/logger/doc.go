// Package logger builds *slog.Logger instances from functional options and
// offers attribute helpers that keep key names consistent across memid.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which injects values pulled from the
// record's context (for example a request id) on every call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "memid"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.Debug("candidate rejected",
//	    logger.Candidate(id),
//	    logger.Reason("duplicate"),
//	    logger.Attempt(n),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
//
// Discard returns a logger that drops everything; library types use it when
// the caller did not supply one.
package logger
