package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Candidate records a generated candidate identifier.
func Candidate(id string) slog.Attr {
	return slog.String("candidate", id)
}

// Attempt records the 1-based attempt number within a generation call.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Attempts records the total number of attempts a call used or was allowed.
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// Reason records why a candidate was rejected.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Lists records the configured word lists, in order.
func Lists[T fmt.Stringer](lists []T) slog.Attr {
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = l.String()
	}
	return slog.Any("lists", names)
}

// Count records an item count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Registry records the name of the external registry backend.
func Registry(name string) slog.Attr {
	return slog.String("registry", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
