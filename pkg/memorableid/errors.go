package memorableid

import "errors"

var (
	// ErrInvalidConfig wraps every configuration failure. It is returned by New
	// and at the start of a generation call; retrying does not help.
	ErrInvalidConfig = errors.New("memorableid: invalid configuration")

	ErrNoWordLists       = errors.New("at least one word list must be specified")
	ErrUnknownWordList   = errors.New("unknown word list")
	ErrMaxLengthTooSmall = errors.New("the max length must be greater or equal to lists.Count * (8 + join.length)")

	// ErrRetryExhausted matches any *RetryExhaustedError.
	ErrRetryExhausted = errors.New("memorableid: maximum number of attempts exceeded")

	// ErrValidatorFailed wraps an error returned by an asynchronous validator.
	ErrValidatorFailed = errors.New("memorableid: validator failed")
)

// RetryExhaustedError is returned when every attempt of a call was rejected
// by the length limit, the duplicate check or the validator.
type RetryExhaustedError struct {
	Attempts      int
	WithValidator bool
}

func (e *RetryExhaustedError) Error() string {
	if e.WithValidator {
		return "The maximum number of attempts has been exceeded, increase the MaxLength value, " +
			"reduce the number of lists used or change it so that the validation function passes more values."
	}
	return "The maximum number of attempts has been exceeded, increase the MaxLength value, " +
		"or reduce the number of lists used"
}

func (e *RetryExhaustedError) Is(target error) bool {
	return target == ErrRetryExhausted
}
