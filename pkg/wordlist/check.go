package wordlist

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// Check verifies the catalog invariants for a list of words: every word is
// non-empty, made of ASCII letters only, starts with an uppercase letter and
// appears once ignoring case.
func Check(words []string) error {
	fold := cases.Fold()
	seen := make(map[string]string, len(words))

	var errs []error
	for i, w := range words {
		if w == "" {
			errs = append(errs, fmt.Errorf("%w: line %d", ErrEmptyWord, i+1))
			continue
		}
		if !asciiLetters(w) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidWord, w))
			continue
		}
		if w[0] < 'A' || w[0] > 'Z' {
			errs = append(errs, fmt.Errorf("%w: %q", ErrNotCapitalised, w))
		}
		key := fold.String(w)
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%w: %q and %q", ErrDuplicateWord, first, w))
			continue
		}
		seen[key] = w
	}
	return errors.Join(errs...)
}

func asciiLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
