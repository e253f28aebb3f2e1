package registry

import "errors"

var (
	ErrRegistryUnavailable = errors.New("registry: store unavailable")
	ErrEmptyID             = errors.New("registry: empty identifier")
)
