package memorableid

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/dmitrymomot/memid/pkg/wordlist"
)

const (
	// DefaultMaxAttempts bounds a single generation call when the config leaves
	// MaxAttempts nil.
	DefaultMaxAttempts = 100

	// estimatedWordLength is the per-list word length assumed by the
	// max-length precondition.
	estimatedWordLength = 8
)

// Config is an immutable description of how identifiers are built. The
// builder methods return modified copies and never touch the receiver.
//
// The struct tags let a Config be read from MEMID_* environment variables
// (see pkg/config) or from a YAML file.
type Config struct {
	// Lists selects the word lists; their order is the order of the words.
	Lists []wordlist.List `env:"MEMID_LISTS" envSeparator:"," envDefault:"adjectives,animals" yaml:"lists"`

	// Joiner is inserted between consecutive words.
	Joiner string `env:"MEMID_JOINER" yaml:"joiner"`

	// MaxLength is an exclusive upper bound on the identifier length. Nil
	// means unbounded. Any set value, zero included, is subject to the
	// max-length precondition.
	MaxLength *int `env:"MEMID_MAX_LENGTH" yaml:"max_length"`

	// MaxAttempts bounds one generation call. Nil means DefaultMaxAttempts;
	// a set value of zero or less exhausts before the first candidate.
	MaxAttempts *int `env:"MEMID_MAX_ATTEMPTS" yaml:"max_attempts"`

	// AllowDuplicates turns off duplicate suppression for the generator.
	AllowDuplicates bool `env:"MEMID_ALLOW_DUPLICATES" yaml:"allow_duplicates"`

	// Seed makes generation deterministic. Nil seeds from the clock.
	Seed *int64 `env:"MEMID_SEED" yaml:"seed"`
}

// Using starts a configuration over the given lists.
func Using(lists ...wordlist.List) Config {
	return Config{Lists: slices.Clone(lists)}
}

// JoiningWith sets the separator placed between words, e.g. "-" gives
// "Hurried-Antelope". The default is no separator.
func (c Config) JoiningWith(joiner string) Config {
	c = c.clone()
	c.Joiner = joiner
	return c
}

// LimitLengthTo sets the exclusive maximum length of an identifier. It must be
// at least len(Lists) * (8 + len(Joiner)); this is checked when generating.
func (c Config) LimitLengthTo(maxLength int) Config {
	c = c.clone()
	c.MaxLength = &maxLength
	return c
}

// AttemptUpTo sets how many candidates a single call may try.
func (c Config) AttemptUpTo(maxAttempts int) Config {
	c = c.clone()
	c.MaxAttempts = &maxAttempts
	return c
}

// UsingSeed makes generation deterministic.
func (c Config) UsingSeed(seed int64) Config {
	c = c.clone()
	c.Seed = &seed
	return c
}

// AllowingDuplicates lets the generator return the same identifier twice.
func (c Config) AllowingDuplicates() Config {
	c = c.clone()
	c.AllowDuplicates = true
	return c
}

// Validate runs every configuration check, including the max-length
// precondition that New defers to generation time.
func (c Config) Validate() error {
	if err := c.validateLists(); err != nil {
		return err
	}
	return c.validateLength()
}

func (c Config) validateLists() error {
	if len(c.Lists) == 0 {
		return errors.Join(ErrInvalidConfig, ErrNoWordLists)
	}
	for _, l := range c.Lists {
		if !l.Valid() {
			return errors.Join(ErrInvalidConfig, ErrUnknownWordList, fmt.Errorf("list %d", int(l)))
		}
	}
	return nil
}

// validateLength is a coarse lower bound assuming each list contributes an
// 8 character word. It does not look at the actual catalogs. Lengths are
// counted in runes.
func (c Config) validateLength() error {
	if len(c.Lists)*(estimatedWordLength+utf8.RuneCountInString(c.Joiner)) > c.maxLength() {
		return errors.Join(ErrInvalidConfig, ErrMaxLengthTooSmall)
	}
	return nil
}

func (c Config) maxLength() int {
	if c.MaxLength == nil {
		return math.MaxInt
	}
	return *c.MaxLength
}

func (c Config) maxAttempts() int {
	if c.MaxAttempts == nil {
		return DefaultMaxAttempts
	}
	return max(*c.MaxAttempts, 0)
}

// clone returns a copy of c that shares no memory with it.
func (c Config) clone() Config {
	c.Lists = slices.Clone(c.Lists)
	c.MaxLength = clonePtr(c.MaxLength)
	c.MaxAttempts = clonePtr(c.MaxAttempts)
	c.Seed = clonePtr(c.Seed)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
