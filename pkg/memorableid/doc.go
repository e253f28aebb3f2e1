// Package memorableid generates short, human-memorable identifiers such as
// "WhiteLangur" or "Viscous-Khaki-SpadefootToad" by joining one random word
// from each of several curated word lists.
//
// The identifiers are meant for display: container names, session codes,
// fixtures. They are not secret and not globally unique; uniqueness is only
// tracked within one Generator.
//
// # Architecture
//
//   - Config is an immutable value built with Using and the chaining methods
//     (JoiningWith, LimitLengthTo, AttemptUpTo, UsingSeed, AllowingDuplicates).
//     Each method returns a copy.
//   - Generator owns the mutable state: a seeded math/rand source guarded by a
//     mutex and the set of identifiers already returned.
//   - Words come from a wordlist.Provider, the embedded catalog by default.
//
// A generation call first checks that MaxLength leaves room for about eight
// characters per list plus the joiner. It then tries up to MaxAttempts
// candidates, rejecting those that are too long, already issued, or vetoed by
// the caller's validator.
//
// # Usage
//
//	gen, err := memorableid.New(memorableid.ColourfulAnimal().JoiningWith("-"))
//	if err != nil {
//	    return err
//	}
//	id, err := gen.Generate() // e.g. "Teal-Otter"
//
// Reject identifiers that already exist somewhere else:
//
//	id, err := gen.GenerateValid(func(s string) bool { return !taken[s] })
//
// Or ask a remote store without blocking the caller:
//
//	f := gen.GenerateAsync(ctx, memorableid.ValidatorFunc(func(ctx context.Context, s string) (bool, error) {
//	    return store.Reserve(ctx, s)
//	}))
//	id, err := f.Await()
//
// # Errors
//
// Configuration problems wrap ErrInvalidConfig. A call that runs out of
// attempts returns *RetryExhaustedError, which matches ErrRetryExhausted. An
// asynchronous validator error is returned joined with ErrValidatorFailed.
package memorableid
