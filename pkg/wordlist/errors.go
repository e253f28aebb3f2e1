package wordlist

import "errors"

var (
	ErrResourceNotFound = errors.New("wordlist: resource not found")
	ErrUnknownList      = errors.New("wordlist: unknown list")
	ErrEmptyWord        = errors.New("wordlist: empty word")
	ErrInvalidWord      = errors.New("wordlist: word must contain ASCII letters only")
	ErrNotCapitalised   = errors.New("wordlist: word must start with an uppercase letter")
	ErrDuplicateWord    = errors.New("wordlist: duplicate word")
)
