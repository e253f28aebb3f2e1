package memorableid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/memid/pkg/async"
	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

// Validator vetoes a candidate, for example one that already exists in a
// database. Returning false makes the generator try again.
type Validator func(candidate string) bool

// AsyncValidator is a Validator whose answer arrives later. The generator
// holds none of its locks while waiting for the future.
type AsyncValidator func(ctx context.Context, candidate string) *async.Future[bool]

// ValidatorFunc runs fn in its own goroutine for every candidate.
func ValidatorFunc(fn func(ctx context.Context, candidate string) (bool, error)) AsyncValidator {
	return func(ctx context.Context, candidate string) *async.Future[bool] {
		return async.Async(ctx, candidate, fn)
	}
}

// rejection reasons, used for logs and metrics
const (
	reasonLength    = "length"
	reasonDuplicate = "duplicate"
	reasonValidator = "validator"
)

// check is the per-candidate hook shared by all entry points.
type check func(ctx context.Context, candidate string) (bool, error)

// Generator builds identifiers from a fixed Config. It is safe for concurrent
// use: sampling is serialised on the random source and the duplicate check is
// atomic, everything else runs in parallel.
type Generator struct {
	cfg     Config
	words   [][]string
	history *history
	log     *slog.Logger
	metrics *Metrics

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// New builds a generator for cfg. It fails with ErrNoWordLists when cfg
// selects no list, and with the provider's error when a list cannot be read.
// The max-length precondition is checked on every generation call.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.validateLists(); err != nil {
		return nil, err
	}

	o := options{
		provider: wordlist.Embedded(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	words := make([][]string, len(cfg.Lists))
	for i, l := range cfg.Lists {
		w, err := o.provider.Words(l)
		if err != nil {
			return nil, err
		}
		if len(w) == 0 {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("word list %s is empty", l))
		}
		words[i] = w
	}

	cfg = cfg.clone()
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Generator{
		cfg:     cfg,
		words:   words,
		history: newHistory(!cfg.AllowDuplicates),
		log:     o.log.With(logger.Component("memorableid")),
		metrics: o.metrics,
		rnd:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg.clone()
}

// Generate returns an identifier that satisfies the length limit and, unless
// duplicates are allowed, was never returned by this generator before.
func (g *Generator) Generate() (string, error) {
	return g.run(context.Background(), nil)
}

// GenerateValid is like Generate but also requires validate to accept the
// identifier.
func (g *Generator) GenerateValid(validate Validator) (string, error) {
	if validate == nil {
		return g.Generate()
	}
	return g.run(context.Background(), func(_ context.Context, candidate string) (bool, error) {
		return validate(candidate), nil
	})
}

// GenerateAsync runs the generation in its own goroutine and awaits validate
// for each candidate. An error from validate ends the call with
// ErrValidatorFailed. The max-length precondition is checked before ctx, so
// a misconfigured generator reports ErrInvalidConfig even when ctx is already
// done. Otherwise ctx is handed to the validator; the generator itself never
// checks it once started.
func (g *Generator) GenerateAsync(ctx context.Context, validate AsyncValidator) *async.Future[string] {
	if err := g.checkPrecondition(); err != nil {
		return async.Failed[string](err)
	}
	return async.Async(ctx, validate, g.GenerateContext)
}

// GenerateContext is the blocking form of GenerateAsync.
func (g *Generator) GenerateContext(ctx context.Context, validate AsyncValidator) (string, error) {
	if validate == nil {
		return g.run(ctx, nil)
	}
	return g.run(ctx, func(ctx context.Context, candidate string) (bool, error) {
		f := validate(ctx, candidate)
		if f == nil {
			return false, errors.New("validator returned a nil future")
		}
		return f.Await()
	})
}

// Reseed replaces the random source. It may be called while other goroutines
// are generating.
func (g *Generator) Reseed(seed int64) {
	g.rndMu.Lock()
	g.rnd = rand.New(rand.NewSource(seed))
	g.rndMu.Unlock()
}

// Issued reports how many distinct identifiers the generator has recorded.
// It is always zero when duplicates are allowed.
func (g *Generator) Issued() int {
	return g.history.len()
}

// Reset forgets every identifier recorded so far.
func (g *Generator) Reset() {
	g.history.reset()
}

func (g *Generator) run(ctx context.Context, accept check) (string, error) {
	if err := g.checkPrecondition(); err != nil {
		return "", err
	}

	maxLength := g.cfg.maxLength()
	maxAttempts := g.cfg.maxAttempts()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := g.candidate()

		if utf8.RuneCountInString(candidate) >= maxLength {
			g.rejected(ctx, candidate, attempt, reasonLength)
			continue
		}
		if g.history.checkAndRecord(candidate) {
			g.rejected(ctx, candidate, attempt, reasonDuplicate)
			continue
		}
		if accept != nil {
			ok, err := accept(ctx, candidate)
			if err != nil {
				g.metrics.incOutcome(outcomeValidatorError)
				g.log.ErrorContext(ctx, "validator failed",
					logger.Candidate(candidate),
					logger.Attempt(attempt),
					logger.Error(err),
				)
				return "", errors.Join(ErrValidatorFailed, err)
			}
			if !ok {
				g.rejected(ctx, candidate, attempt, reasonValidator)
				continue
			}
		}

		g.metrics.observeSuccess(attempt)
		return candidate, nil
	}

	g.metrics.incOutcome(outcomeExhausted)
	g.log.WarnContext(ctx, "attempts exhausted",
		logger.Lists(g.cfg.Lists),
		logger.Attempts(maxAttempts),
		slog.Bool("validator", accept != nil),
	)
	return "", &RetryExhaustedError{Attempts: maxAttempts, WithValidator: accept != nil}
}

func (g *Generator) checkPrecondition() error {
	if err := g.cfg.validateLength(); err != nil {
		g.metrics.incOutcome(outcomeInvalidConfig)
		return err
	}
	return nil
}

// candidate samples one word per list, in list order, and joins them.
func (g *Generator) candidate() string {
	picked := make([]string, len(g.words))

	g.rndMu.Lock()
	for i, words := range g.words {
		picked[i] = words[g.rnd.Intn(len(words))]
	}
	g.rndMu.Unlock()

	return strings.Join(picked, g.cfg.Joiner)
}

func (g *Generator) rejected(ctx context.Context, candidate string, attempt int, reason string) {
	g.metrics.incRejection(reason)
	g.log.DebugContext(ctx, "candidate rejected",
		logger.Candidate(candidate),
		logger.Attempt(attempt),
		logger.Reason(reason),
	)
}
