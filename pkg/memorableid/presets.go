package memorableid

import "github.com/dmitrymomot/memid/pkg/wordlist"

// DescriptiveAnimal configures two words, [Adjective][Animal], e.g. "HappyPenguin".
func DescriptiveAnimal() Config {
	return Using(wordlist.Adjectives, wordlist.Animals)
}

// ColourfulAnimal configures two words, [Colour][Animal], e.g. "BlueDuck".
func ColourfulAnimal() Config {
	return Using(wordlist.Colours, wordlist.Animals)
}

// DescriptiveColourfulAnimal configures three words, [Adjective][Colour][Animal],
// e.g. "ExpressiveGreenEmu".
func DescriptiveColourfulAnimal() Config {
	return Using(wordlist.Adjectives, wordlist.Colours, wordlist.Animals)
}

// NewWith is shorthand for New(Using(lists...)).
func NewWith(lists ...wordlist.List) (*Generator, error) {
	return New(Using(lists...))
}

// MustNew is like New but panics on error. Meant for presets and package
// level variables.
func MustNew(cfg Config, opts ...Option) *Generator {
	g, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return g
}
