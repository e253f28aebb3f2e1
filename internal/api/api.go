package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/memid/pkg/clientip"
	"github.com/dmitrymomot/memid/pkg/httpserver"
	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/ratelimiter"
	"github.com/dmitrymomot/memid/pkg/requestid"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

// DefaultMaxCount caps the count parameter of GET /v1/ids.
const DefaultMaxCount = 100

// API exposes one generator over HTTP.
type API struct {
	gen        *memorableid.Generator
	validate   memorableid.AsyncValidator
	provider   wordlist.Provider
	log        *slog.Logger
	gatherer   prometheus.Gatherer
	checks     []httpserver.Check
	maxCount   int
	limiter    ratelimiter.Limiter
	trustProxy bool
}

// Option configures an API.
type Option func(*API)

// WithValidator checks every identifier with v, typically registry.Validator.
func WithValidator(v memorableid.AsyncValidator) Option {
	return func(a *API) { a.validate = v }
}

// WithProvider sets the catalog served by /v1/lists. It should be the one
// the generator was built with.
func WithProvider(p wordlist.Provider) Option {
	return func(a *API) {
		if p != nil {
			a.provider = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithGatherer serves g on /metrics. Without it the endpoint is not mounted.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(a *API) { a.gatherer = g }
}

// WithReadinessChecks adds dependency probes to /readyz.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}

// WithMaxCount caps how many identifiers one request may ask for.
func WithMaxCount(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.maxCount = n
		}
	}
}

// WithRateLimiter charges every identifier requested from /v1/ids as one
// token against the client's address.
func WithRateLimiter(l ratelimiter.Limiter) Option {
	return func(a *API) { a.limiter = l }
}

// WithTrustProxy identifies clients by proxy headers instead of the peer
// address. Enable it only behind a proxy that sets those headers.
func WithTrustProxy(trust bool) Option {
	return func(a *API) { a.trustProxy = trust }
}

func New(gen *memorableid.Generator, opts ...Option) *API {
	a := &API{
		gen:      gen,
		provider: wordlist.Embedded(),
		log:      logger.Discard(),
		maxCount: DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("api"))
	return a
}

// Handler builds the router.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.trustProxy))
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, append([]httpserver.Check{alwaysReady}, a.checks...)...))
	if a.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/ids", a.generateIDs)
		r.Get("/lists", a.listCatalog)
		r.Get("/lists/{name}", a.listWords)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
