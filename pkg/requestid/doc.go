// Package requestid assigns and propagates X-Request-ID headers.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
//
// Incoming IDs are kept when they are at most 128 characters of letters,
// digits, '-' and '_'; anything else is replaced with a fresh UUID.
package requestid
