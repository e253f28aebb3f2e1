// Package async provides a small generic Future used to run validators and
// generation calls without blocking the caller.
//
// Async starts a function in its own goroutine and returns a *Future at once.
// The result is read with Await, AwaitContext or AwaitWithTimeout, or polled
// with IsComplete. Resolved and Failed build futures that are complete from
// the start, which is handy when a synchronous answer has to satisfy an
// asynchronous contract.
//
// # Usage
//
//	f := async.Async(ctx, "SunnyOtter", func(ctx context.Context, id string) (bool, error) {
//	    return store.IsFree(ctx, id)
//	})
//
//	// do other work ...
//	ok, err := f.Await()
//
// WaitAll collects the results of several futures, stopping at the first
// error.
//
// # Error Handling
//
// Futures carry whatever error the function returned. A context that is done
// before the goroutine starts completes the future with ctx.Err().
// AwaitWithTimeout returns ErrTimeout when the deadline passes first.
package async
