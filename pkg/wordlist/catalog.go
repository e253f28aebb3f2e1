package wordlist

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

//go:embed lists/*.txt
var embedded embed.FS

// Provider supplies the ordered words of a list. Returned slices are shared
// and must be treated as read-only.
type Provider interface {
	Words(l List) ([]string, error)
}

var (
	catalogOnce sync.Once
	catalog     map[List][]string
	catalogErr  error
)

// Load reads every built-in list from the embedded resources. The catalog is
// built once per process; later calls return the same read-only map.
func Load() (map[List][]string, error) {
	catalogOnce.Do(func() {
		loaded := make(map[List][]string, len(listNames))
		for _, l := range All() {
			words, err := readList(embedded, l)
			if err != nil {
				catalogErr = err
				return
			}
			loaded[l] = words
		}
		catalog = loaded
	})
	return catalog, catalogErr
}

// MustLoad is like Load but panics when a resource is missing. A missing list
// means the binary was built without its word lists and cannot recover.
func MustLoad() map[List][]string {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("wordlist: %v", err))
	}
	return c
}

// Words returns the built-in words of l. It panics on a missing resource,
// see MustLoad.
func Words(l List) []string {
	return MustLoad()[l]
}

// Embedded returns the Provider backed by the built-in catalog.
func Embedded() Provider {
	return embeddedProvider{}
}

type embeddedProvider struct{}

func (embeddedProvider) Words(l List) ([]string, error) {
	if !l.Valid() {
		return nil, ErrUnknownList
	}
	c, err := Load()
	if err != nil {
		return nil, err
	}
	return c[l], nil
}

// FSProvider loads lists from any fs.FS laid out as "<dir>/<Name>.txt".
// Each list is read at most once.
type FSProvider struct {
	fsys    fs.FS
	mu      sync.Mutex
	entries map[List]*fsEntry
}

type fsEntry struct {
	once  sync.Once
	words []string
	err   error
}

// NewFSProvider returns a provider reading from fsys. Use fs.Sub to point it
// at a nested directory.
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{
		fsys:    fsys,
		entries: make(map[List]*fsEntry),
	}
}

func (p *FSProvider) Words(l List) ([]string, error) {
	if !l.Valid() {
		return nil, ErrUnknownList
	}

	p.mu.Lock()
	e, ok := p.entries[l]
	if !ok {
		e = &fsEntry{}
		p.entries[l] = e
	}
	p.mu.Unlock()

	e.once.Do(func() {
		data, err := fs.ReadFile(p.fsys, l.String()+".txt")
		if err != nil {
			e.err = errors.Join(ErrResourceNotFound, fmt.Errorf("resource %s.txt: %w", l, err))
			return
		}
		e.words = Split(string(data))
	})
	return e.words, e.err
}

// ResourceName is the logical name of the embedded resource backing l.
func ResourceName(l List) string {
	return "lists/" + l.String() + ".txt"
}

func readList(fsys fs.FS, l List) ([]string, error) {
	name := ResourceName(l)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrResourceNotFound, fmt.Errorf("resource %s: %w", name, err))
	}
	return Split(string(data)), nil
}

// Split turns line-delimited text into words: lines are trimmed and empty
// lines dropped.
func Split(text string) []string {
	lines := strings.Split(text, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words
}
