package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/memid/pkg/registry"
)

type document struct {
	ID         string    `bson:"_id"`
	ReservedAt time.Time `bson:"reserved_at"`
}

// Store reserves identifiers as documents whose _id is the identifier. The
// server's unique _id index makes the insert the atomic check.
type Store struct {
	coll *mongo.Collection
}

// New returns a Store over cfg.Database and cfg.Collection.
func New(client *mongo.Client, cfg Config) *Store {
	return &Store{coll: client.Database(cfg.Database).Collection(cfg.Collection)}
}

func (s *Store) Reserve(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, registry.ErrEmptyID
	}
	_, err := s.coll.InsertOne(ctx, document{ID: id, ReservedAt: time.Now().UTC()})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Release frees id so it can be reserved again.
func (s *Store) Release(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}
