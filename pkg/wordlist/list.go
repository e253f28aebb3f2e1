package wordlist

import (
	"errors"
	"strconv"
	"strings"
)

// List identifies one of the built-in word catalogs.
type List int

// Built-in word lists. The order matches the resource files under lists/.
const (
	Animals List = iota
	Colours
	Adjectives
	Foods
	Objects
	Nature
	Shapes
	Materials
)

var listNames = [...]string{
	Animals:    "Animals",
	Colours:    "Colours",
	Adjectives: "Adjectives",
	Foods:      "Foods",
	Objects:    "Objects",
	Nature:     "Nature",
	Shapes:     "Shapes",
	Materials:  "Materials",
}

// aliases accepted by Parse in addition to the canonical names.
var aliases = map[string]List{
	"colors": Colours,
	"color":  Colours,
	"colour": Colours,
	"animal": Animals,
	"food":   Foods,
	"object": Objects,
	"shape":  Shapes,
}

// All returns every built-in list in declaration order.
func All() []List {
	all := make([]List, len(listNames))
	for i := range listNames {
		all[i] = List(i)
	}
	return all
}

// Valid reports whether l names a built-in list.
func (l List) Valid() bool {
	return l >= 0 && int(l) < len(listNames)
}

func (l List) String() string {
	if !l.Valid() {
		return "List(" + strconv.Itoa(int(l)) + ")"
	}
	return listNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l List) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, ErrUnknownList
	}
	return []byte(listNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so lists can be read
// from env variables, YAML files and command line flags.
func (l *List) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Parse resolves a list by its case-insensitive name.
func Parse(name string) (List, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range listNames {
		if strings.ToLower(n) == key {
			return List(i), nil
		}
	}
	if l, ok := aliases[key]; ok {
		return l, nil
	}
	return 0, errors.Join(ErrUnknownList, errors.New(name))
}

// ParseAll resolves every name with Parse and stops at the first failure.
func ParseAll(names ...string) ([]List, error) {
	lists := make([]List, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		l, err := Parse(n)
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, nil
}
