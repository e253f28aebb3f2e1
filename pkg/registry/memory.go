package registry

import (
	"context"

	"github.com/dmitrymomot/memid/pkg/cache"
)

// DefaultMemoryCapacity is used by NewMemory for a non-positive capacity.
const DefaultMemoryCapacity = 100_000

// Memory is an in-process Registry bounded to a number of identifiers. Once
// full it forgets the least recently reserved identifier, which may then be
// reserved again.
type Memory struct {
	seen *cache.LRU[string, struct{}]
}

func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &Memory{seen: cache.NewLRU[string, struct{}](capacity)}
}

func (m *Memory) Reserve(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return m.seen.PutIfAbsent(id, struct{}{}), nil
}

// Len reports how many identifiers are currently remembered.
func (m *Memory) Len() int {
	return m.seen.Len()
}
