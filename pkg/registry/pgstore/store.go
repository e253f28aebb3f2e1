package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/memid/pkg/registry"
)

const (
	reserveQuery = `INSERT INTO memid_identifiers (row_id, id) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
	releaseQuery = `DELETE FROM memid_identifiers WHERE id = $1`
)

// Execer is the subset of *pgxpool.Pool the store needs.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store reserves identifiers as rows of memid_identifiers. Run Migrate
// before the first Reserve.
type Store struct {
	db Execer
}

func New(db Execer) *Store {
	return &Store{db: db}
}

func (s *Store) Reserve(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, registry.ErrEmptyID
	}
	tag, err := s.db.Exec(ctx, reserveQuery, uuid.New(), id)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Release frees id so it can be reserved again.
func (s *Store) Release(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, releaseQuery, id)
	return err
}
