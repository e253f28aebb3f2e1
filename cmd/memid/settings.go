package main

import (
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/memid/pkg/config"
	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

// generationFlags override the generator settings read from the environment
// and the config file.
type generationFlags struct {
	lists           []string
	joiner          string
	maxLength       int
	maxAttempts     int
	seed            int64
	allowDuplicates bool
	registry        string
}

func (g *generationFlags) register(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&g.lists, "lists", "l", nil, "Word lists in order, e.g. adjectives,colours,animals")
	flags.StringVarP(&g.joiner, "joiner", "j", "", "Separator placed between words")
	flags.IntVar(&g.maxLength, "max-length", 0, "Exclusive maximum identifier length (unbounded unless set)")
	flags.IntVar(&g.maxAttempts, "max-attempts", memorableid.DefaultMaxAttempts, "Candidates tried per identifier")
	flags.Int64Var(&g.seed, "seed", 0, "Seed for reproducible output")
	flags.BoolVar(&g.allowDuplicates, "allow-duplicates", false, "Allow the same identifier twice")
	flags.StringVar(&g.registry, "registry", "", "Check identifiers against a store: memory, redis, postgres, mongo or bolt")
}

// resolve layers the settings: struct defaults, MEMID_* variables, the
// config file and finally the flags that were set explicitly.
func (g *generationFlags) resolve(flags *pflag.FlagSet, configFile string) (memorableid.Config, error) {
	var cfg memorableid.Config
	if configFile != "" {
		if err := config.LoadFile(configFile, &cfg); err != nil {
			return cfg, err
		}
	} else if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	if flags.Changed("lists") {
		lists, err := wordlist.ParseAll(g.lists...)
		if err != nil {
			return cfg, err
		}
		cfg.Lists = lists
	}
	if flags.Changed("joiner") {
		cfg = cfg.JoiningWith(g.joiner)
	}
	if flags.Changed("max-length") {
		cfg = cfg.LimitLengthTo(g.maxLength)
	}
	if flags.Changed("max-attempts") {
		cfg = cfg.AttemptUpTo(g.maxAttempts)
	}
	if flags.Changed("seed") {
		cfg = cfg.UsingSeed(g.seed)
	}
	if flags.Changed("allow-duplicates") {
		cfg.AllowDuplicates = g.allowDuplicates
	}
	return cfg, nil
}
