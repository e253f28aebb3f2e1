package memorableid

import (
	"log/slog"

	"github.com/dmitrymomot/memid/pkg/wordlist"
)

// Option configures the collaborators of a Generator. Generation rules live
// in Config.
type Option func(*options)

type options struct {
	provider wordlist.Provider
	log      *slog.Logger
	metrics  *Metrics
}

// WithLogger sets the logger used for rejected candidates and exhausted
// calls. Nil keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMetrics records generation outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithProvider replaces the built-in catalog. Nil is ignored.
func WithProvider(p wordlist.Provider) Option {
	return func(o *options) {
		if p != nil {
			o.provider = p
		}
	}
}
