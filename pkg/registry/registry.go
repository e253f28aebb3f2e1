package registry

import (
	"context"
	"errors"

	"github.com/dmitrymomot/memid/pkg/memorableid"
)

// Registry is a store of identifiers that are already in use.
type Registry interface {
	// Reserve claims id. It reports false when id was claimed before. The
	// check and the claim are one atomic step in the backing store.
	Reserve(ctx context.Context, id string) (bool, error)
}

// Func adapts an ordinary function to Registry.
type Func func(ctx context.Context, id string) (bool, error)

func (f Func) Reserve(ctx context.Context, id string) (bool, error) {
	return f(ctx, id)
}

// Validator turns r into an asynchronous validator: a candidate is accepted
// only when r lets the caller reserve it. Store failures are joined with
// ErrRegistryUnavailable and abort the generation call.
func Validator(r Registry) memorableid.AsyncValidator {
	return memorableid.ValidatorFunc(func(ctx context.Context, id string) (bool, error) {
		ok, err := r.Reserve(ctx, id)
		if err != nil {
			return false, errors.Join(ErrRegistryUnavailable, err)
		}
		return ok, nil
	})
}
