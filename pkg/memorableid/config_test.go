package memorableid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memid/pkg/config"
	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

func TestConfigBuildersReturnCopies(t *testing.T) {
	t.Parallel()

	base := memorableid.Using(wordlist.Colours, wordlist.Animals)
	derived := base.JoiningWith("-").LimitLengthTo(40).AttemptUpTo(3).UsingSeed(9).AllowingDuplicates()

	assert.Empty(t, base.Joiner)
	assert.Nil(t, base.MaxLength)
	assert.Nil(t, base.MaxAttempts)
	assert.Nil(t, base.Seed)
	assert.False(t, base.AllowDuplicates)

	assert.Equal(t, "-", derived.Joiner)
	require.NotNil(t, derived.MaxLength)
	assert.Equal(t, 40, *derived.MaxLength)
	require.NotNil(t, derived.MaxAttempts)
	assert.Equal(t, 3, *derived.MaxAttempts)
	require.NotNil(t, derived.Seed)
	assert.Equal(t, int64(9), *derived.Seed)
	assert.True(t, derived.AllowDuplicates)

	derived.Lists[0] = wordlist.Foods
	assert.Equal(t, wordlist.Colours, base.Lists[0])

	again := derived.JoiningWith("_")
	*again.MaxLength = 5
	*again.MaxAttempts = 0
	assert.Equal(t, 40, *derived.MaxLength)
	assert.Equal(t, 3, *derived.MaxAttempts)
}

func TestUsingClonesArguments(t *testing.T) {
	t.Parallel()

	lists := []wordlist.List{wordlist.Shapes}
	cfg := memorableid.Using(lists...)
	lists[0] = wordlist.Nature
	assert.Equal(t, []wordlist.List{wordlist.Shapes}, cfg.Lists)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  memorableid.Config
		want []error
	}{
		{name: "preset", cfg: memorableid.DescriptiveColourfulAnimal()},
		{name: "unbounded length", cfg: memorableid.ColourfulAnimal().JoiningWith("----")},
		{name: "exact bound", cfg: memorableid.ColourfulAnimal().JoiningWith("-").LimitLengthTo(18)},
		{name: "no lists", cfg: memorableid.Using(), want: []error{memorableid.ErrInvalidConfig, memorableid.ErrNoWordLists}},
		{name: "unknown list", cfg: memorableid.Using(wordlist.List(-1)), want: []error{memorableid.ErrInvalidConfig, memorableid.ErrUnknownWordList}},
		{name: "too short", cfg: memorableid.ColourfulAnimal().JoiningWith("-").LimitLengthTo(17), want: []error{memorableid.ErrInvalidConfig, memorableid.ErrMaxLengthTooSmall}},
		{name: "joiner counted in runes", cfg: memorableid.ColourfulAnimal().JoiningWith("·").LimitLengthTo(18)},
		{name: "explicit zero", cfg: memorableid.ColourfulAnimal().LimitLengthTo(0), want: []error{memorableid.ErrInvalidConfig, memorableid.ErrMaxLengthTooSmall}},
		{name: "negative", cfg: memorableid.ColourfulAnimal().LimitLengthTo(-5), want: []error{memorableid.ErrMaxLengthTooSmall}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("MEMID_LISTS", "colours, animals")
	t.Setenv("MEMID_JOINER", "-")
	t.Setenv("MEMID_MAX_LENGTH", "30")
	t.Setenv("MEMID_SEED", "33")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg memorableid.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, []wordlist.List{wordlist.Colours, wordlist.Animals}, cfg.Lists)
	assert.Equal(t, "-", cfg.Joiner)
	require.NotNil(t, cfg.MaxLength)
	assert.Equal(t, 30, *cfg.MaxLength)
	assert.Nil(t, cfg.MaxAttempts)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(33), *cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lists: [adjectives, colours, animals]
joiner: "_"
max_attempts: 7
allow_duplicates: true
`), 0o600))

	var cfg memorableid.Config
	require.NoError(t, config.LoadFile(path, &cfg))

	assert.Equal(t, []wordlist.List{wordlist.Adjectives, wordlist.Colours, wordlist.Animals}, cfg.Lists)
	assert.Equal(t, "_", cfg.Joiner)
	require.NotNil(t, cfg.MaxAttempts)
	assert.Equal(t, 7, *cfg.MaxAttempts)
	assert.Nil(t, cfg.MaxLength)
	assert.True(t, cfg.AllowDuplicates)
	assert.Nil(t, cfg.Seed)
}
