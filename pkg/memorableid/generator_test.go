package memorableid_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memid/pkg/async"
	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

func contains(l wordlist.List, word string) bool {
	return slices.Contains(wordlist.Words(l), word)
}

// splitConcatenated finds the colour/animal pair that makes up id.
func splitConcatenated(id string, first, second wordlist.List) (string, string, bool) {
	for _, w := range wordlist.Words(first) {
		if rest, ok := strings.CutPrefix(id, w); ok && contains(second, rest) {
			return w, rest, true
		}
	}
	return "", "", false
}

func TestColourfulAnimalSeeded(t *testing.T) {
	t.Parallel()

	first := memorableid.MustNew(memorableid.ColourfulAnimal().UsingSeed(33))
	second := memorableid.MustNew(memorableid.ColourfulAnimal().UsingSeed(33))

	a, err := first.Generate()
	require.NoError(t, err)
	b, err := second.Generate()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	_, _, ok := splitConcatenated(a, wordlist.Colours, wordlist.Animals)
	assert.True(t, ok, "%q is not a colour followed by an animal", a)
}

func TestJoiningWith(t *testing.T) {
	t.Parallel()

	cfg := memorableid.DescriptiveColourfulAnimal().UsingSeed(33).JoiningWith("-!")
	id, err := memorableid.MustNew(cfg).Generate()
	require.NoError(t, err)

	again, err := memorableid.MustNew(cfg).Generate()
	require.NoError(t, err)
	assert.Equal(t, id, again)

	parts := strings.Split(id, "-!")
	require.Len(t, parts, 3, id)
	assert.True(t, contains(wordlist.Adjectives, parts[0]), parts[0])
	assert.True(t, contains(wordlist.Colours, parts[1]), parts[1])
	assert.True(t, contains(wordlist.Animals, parts[2]), parts[2])
}

func TestDeterministicSequence(t *testing.T) {
	t.Parallel()

	cfg := memorableid.DescriptiveAnimal().JoiningWith("_").UsingSeed(7)
	a := memorableid.MustNew(cfg)
	b := memorableid.MustNew(cfg)

	for range 50 {
		x, err := a.Generate()
		require.NoError(t, err)
		y, err := b.Generate()
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestReseed(t *testing.T) {
	t.Parallel()

	cfg := memorableid.ColourfulAnimal().AllowingDuplicates()
	a := memorableid.MustNew(cfg.UsingSeed(1))
	b := memorableid.MustNew(cfg)
	b.Reseed(1)

	for range 20 {
		x, err := a.Generate()
		require.NoError(t, err)
		y, err := b.Generate()
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestDuplicatesAreNotReturned(t *testing.T) {
	t.Parallel()

	colours := wordlist.Words(wordlist.Colours)
	gen := memorableid.MustNew(memorableid.Using(wordlist.Colours).UsingSeed(33))

	var (
		results []string
		err     error
	)
	// one more call than there are colours guarantees exhaustion
	for range len(colours) + 1 {
		var id string
		id, err = gen.Generate()
		if err != nil {
			break
		}
		results = append(results, id)
	}

	require.Error(t, err)
	assert.ErrorIs(t, err, memorableid.ErrRetryExhausted)
	assert.Equal(t, "The maximum number of attempts has been exceeded, increase the MaxLength value, "+
		"or reduce the number of lists used", err.Error())

	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), len(colours))
	seen := make(map[string]bool, len(results))
	for _, id := range results {
		assert.False(t, seen[id], "duplicate %q", id)
		seen[id] = true
	}
	assert.Equal(t, len(results), gen.Issued())
}

func TestDuplicatesAreReturnedIfAllowed(t *testing.T) {
	t.Parallel()

	colours := wordlist.Words(wordlist.Colours)
	gen := memorableid.MustNew(memorableid.Using(wordlist.Colours).UsingSeed(33).AllowingDuplicates())

	seen := make(map[string]int)
	for range len(colours) + 1 {
		id, err := gen.Generate()
		require.NoError(t, err)
		seen[id]++
	}

	assert.Less(t, len(seen), len(colours)+1, "expected at least one repeat")
	assert.Zero(t, gen.Issued())
}

func TestResetForgetsHistory(t *testing.T) {
	t.Parallel()

	provider := wordlist.NewFSProvider(fstest.MapFS{
		"Shapes.txt": {Data: []byte("Circle\n")},
	})
	gen := memorableid.MustNew(memorableid.Using(wordlist.Shapes).AttemptUpTo(3), memorableid.WithProvider(provider))

	id, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "Circle", id)

	_, err = gen.Generate()
	require.ErrorIs(t, err, memorableid.ErrRetryExhausted)

	gen.Reset()
	id, err = gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "Circle", id)
}

func TestMaxLengthIsExclusive(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveAnimal().LimitLengthTo(18).AllowingDuplicates())
	for range 300 {
		id, err := gen.Generate()
		require.NoError(t, err)
		assert.Less(t, len(id), 18, id)
	}
}

func TestMaxLengthPrecondition(t *testing.T) {
	t.Parallel()

	// 2 lists * (8 + 1) = 18 > 17
	gen := memorableid.MustNew(memorableid.ColourfulAnimal().JoiningWith("-").LimitLengthTo(17))

	called := false
	_, err := gen.GenerateValid(func(string) bool {
		called = true
		return true
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, memorableid.ErrInvalidConfig)
	assert.ErrorIs(t, err, memorableid.ErrMaxLengthTooSmall)
	assert.False(t, called)
	assert.Zero(t, gen.Issued())

	_, err = gen.Generate()
	assert.ErrorIs(t, err, memorableid.ErrMaxLengthTooSmall)

	_, err = gen.GenerateAsync(context.Background(), nil).Await()
	assert.ErrorIs(t, err, memorableid.ErrMaxLengthTooSmall)

	// configuration errors win over a cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.GenerateAsync(ctx, nil).Await()
	assert.ErrorIs(t, err, memorableid.ErrMaxLengthTooSmall)
	assert.NotErrorIs(t, err, context.Canceled)

	// an explicit zero is a bound, not "unbounded"
	zero := memorableid.MustNew(memorableid.ColourfulAnimal().LimitLengthTo(0))
	_, err = zero.Generate()
	assert.ErrorIs(t, err, memorableid.ErrInvalidConfig)
	assert.ErrorIs(t, err, memorableid.ErrMaxLengthTooSmall)
	assert.ErrorIs(t, zero.Config().Validate(), memorableid.ErrMaxLengthTooSmall)

	// the bound itself is accepted
	ok := memorableid.MustNew(memorableid.ColourfulAnimal().JoiningWith("-").LimitLengthTo(18).AllowingDuplicates())
	id, err := ok.Generate()
	require.NoError(t, err)
	assert.Less(t, len(id), 18)
}

func TestNegativeMaxLength(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.ColourfulAnimal().LimitLengthTo(-1))
	_, err := gen.Generate()
	assert.ErrorIs(t, err, memorableid.ErrMaxLengthTooSmall)
}

func TestNewWithoutLists(t *testing.T) {
	t.Parallel()

	_, err := memorableid.New(memorableid.Using())
	require.Error(t, err)
	assert.ErrorIs(t, err, memorableid.ErrInvalidConfig)
	assert.ErrorIs(t, err, memorableid.ErrNoWordLists)

	_, err = memorableid.NewWith()
	assert.ErrorIs(t, err, memorableid.ErrNoWordLists)

	_, err = memorableid.New(memorableid.Using(wordlist.List(99)))
	assert.ErrorIs(t, err, memorableid.ErrUnknownWordList)

	assert.Panics(t, func() { memorableid.MustNew(memorableid.Config{}) })
}

func TestGenerateValid(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal())

	var calls []string
	id, err := gen.GenerateValid(func(candidate string) bool {
		calls = append(calls, candidate)
		return len(calls) > 3
	})
	require.NoError(t, err)
	require.Len(t, calls, 4)
	assert.Equal(t, calls[3], id)

	// rejected candidates stay recorded
	assert.Equal(t, 4, gen.Issued())
}

func TestGenerateValidExhausted(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveAnimal().AttemptUpTo(5))

	calls := 0
	_, err := gen.GenerateValid(func(string) bool {
		calls++
		return false
	})
	require.Error(t, err)
	assert.Equal(t, 5, calls)

	var exhausted *memorableid.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Attempts)
	assert.True(t, exhausted.WithValidator)
	assert.Contains(t, err.Error(), "change it so that the validation function passes more values")
}

func TestZeroAttemptsExhaustImmediately(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		gen := memorableid.MustNew(memorableid.DescriptiveAnimal().AttemptUpTo(n))

		calls := 0
		_, err := gen.GenerateValid(func(string) bool {
			calls++
			return true
		})
		require.ErrorIs(t, err, memorableid.ErrRetryExhausted, "attempts %d", n)
		assert.Zero(t, calls)
		assert.Zero(t, gen.Issued())

		var exhausted *memorableid.RetryExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Zero(t, exhausted.Attempts)
		assert.True(t, exhausted.WithValidator)

		_, err = gen.Generate()
		assert.ErrorIs(t, err, memorableid.ErrRetryExhausted)
	}
}

func TestUnsetAttemptsUseDefault(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveAnimal().AllowingDuplicates())

	calls := 0
	_, err := gen.GenerateValid(func(string) bool {
		calls++
		return false
	})
	require.ErrorIs(t, err, memorableid.ErrRetryExhausted)
	assert.Equal(t, memorableid.DefaultMaxAttempts, calls)
}

func TestCanGenerateManyUnique(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal())
	items := make(map[string]struct{}, 10000)

	for range 10000 {
		id, err := gen.GenerateValid(func(s string) bool {
			_, taken := items[s]
			return !taken
		})
		require.NoError(t, err)
		items[id] = struct{}{}
	}
	assert.Len(t, items, 10000)
}

func TestGenerateAsync(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.ColourfulAnimal().JoiningWith("-"))

	var mu sync.Mutex
	taken := map[string]bool{}
	reserve := memorableid.ValidatorFunc(func(ctx context.Context, candidate string) (bool, error) {
		mu.Lock()
		defer mu.Unlock()
		if taken[candidate] {
			return false, nil
		}
		taken[candidate] = true
		return true, nil
	})

	futures := make([]*async.Future[string], 20)
	for i := range futures {
		futures[i] = gen.GenerateAsync(context.Background(), reserve)
	}
	ids, err := async.WaitAll(futures...)
	require.NoError(t, err)

	unique := make(map[string]bool)
	for _, id := range ids {
		assert.Len(t, strings.Split(id, "-"), 2)
		unique[id] = true
	}
	assert.Len(t, unique, 20)
}

func TestGenerateAsyncResolvedValidator(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveAnimal().AttemptUpTo(4))

	rejectAll := func(context.Context, string) *async.Future[bool] { return async.Resolved(false) }
	_, err := gen.GenerateContext(context.Background(), rejectAll)
	var exhausted *memorableid.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.True(t, exhausted.WithValidator)

	acceptAll := func(context.Context, string) *async.Future[bool] { return async.Resolved(true) }
	id, err := gen.GenerateContext(context.Background(), acceptAll)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestGenerateAsyncValidatorError(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.ColourfulAnimal())
	boom := errors.New("store unavailable")

	calls := 0
	_, err := gen.GenerateAsync(context.Background(), memorableid.ValidatorFunc(func(context.Context, string) (bool, error) {
		calls++
		return false, boom
	})).Await()

	require.Error(t, err)
	assert.ErrorIs(t, err, memorableid.ErrValidatorFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	_, err = gen.GenerateContext(context.Background(), func(context.Context, string) *async.Future[bool] { return nil })
	assert.ErrorIs(t, err, memorableid.ErrValidatorFailed)
}

func TestGenerateAsyncDoesNotBlockOtherCalls(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal())

	release := make(chan struct{})
	waiting := make(chan struct{})
	var once sync.Once
	pending := gen.GenerateAsync(context.Background(), memorableid.ValidatorFunc(func(context.Context, string) (bool, error) {
		once.Do(func() { close(waiting) })
		<-release
		return true, nil
	}))
	<-waiting

	done := async.Async(context.Background(), struct{}{}, func(context.Context, struct{}) (string, error) {
		return gen.Generate()
	})
	id, err := done.AwaitWithTimeout(2 * time.Second)
	require.NoError(t, err, "a suspended validator must not block other calls")
	assert.NotEmpty(t, id)

	close(release)
	slow, err := pending.Await()
	require.NoError(t, err)
	assert.NotEqual(t, id, slow)
}

func TestConcurrentGenerate(t *testing.T) {
	t.Parallel()

	gen := memorableid.MustNew(memorableid.DescriptiveColourfulAnimal())

	const (
		workers    = 8
		iterations = 100
	)
	ids := make(chan string, workers*iterations)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				id, err := gen.Generate()
				if !assert.NoError(t, err) {
					return
				}
				ids <- id
			}
		}()
	}

	stop := make(chan struct{})
	reseeded := make(chan struct{})
	go func() {
		defer close(reseeded)
		for i := int64(0); ; i++ {
			select {
			case <-stop:
				return
			default:
				gen.Reseed(i)
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-reseeded
	close(ids)

	seen := make(map[string]bool, workers*iterations)
	for id := range ids {
		assert.False(t, seen[id], "duplicate %q", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*iterations)
	assert.Equal(t, workers*iterations, gen.Issued())
}

func TestWithProvider(t *testing.T) {
	t.Parallel()

	provider := wordlist.NewFSProvider(fstest.MapFS{
		"Colours.txt": {Data: []byte("Red\nBlue\n")},
		"Animals.txt": {Data: []byte("Cat\n")},
		"Foods.txt":   {Data: []byte("\n\n")},
	})

	gen, err := memorableid.New(memorableid.ColourfulAnimal(), memorableid.WithProvider(provider))
	require.NoError(t, err)

	got := map[string]bool{}
	for range 2 {
		id, err := gen.Generate()
		require.NoError(t, err)
		got[id] = true
	}
	assert.Equal(t, map[string]bool{"RedCat": true, "BlueCat": true}, got)

	_, err = gen.Generate()
	assert.ErrorIs(t, err, memorableid.ErrRetryExhausted)

	_, err = memorableid.New(memorableid.Using(wordlist.Nature), memorableid.WithProvider(provider))
	assert.ErrorIs(t, err, wordlist.ErrResourceNotFound)

	_, err = memorableid.New(memorableid.Using(wordlist.Foods), memorableid.WithProvider(provider))
	assert.ErrorIs(t, err, memorableid.ErrInvalidConfig)
}

func TestGeneratorConfigIsACopy(t *testing.T) {
	t.Parallel()

	cfg := memorableid.ColourfulAnimal().UsingSeed(5)
	gen := memorableid.MustNew(cfg)

	cfg.Lists[0] = wordlist.Foods
	*cfg.Seed = 6

	got := gen.Config()
	assert.Equal(t, []wordlist.List{wordlist.Colours, wordlist.Animals}, got.Lists)
	require.NotNil(t, got.Seed)
	assert.Equal(t, int64(5), *got.Seed)
}
