package mongostore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memid/pkg/registry"
	"github.com/dmitrymomot/memid/pkg/registry/mongostore"
)

func TestConnectInvalidURL(t *testing.T) {
	t.Parallel()

	_, err := mongostore.Connect(context.Background(), mongostore.Config{ConnectionURL: "not-a-mongo-url", RetryAttempts: 1})
	assert.ErrorIs(t, err, mongostore.ErrFailedToConnectToMongo)
}

func TestStore(t *testing.T) {
	url := os.Getenv("MEMID_TEST_MONGO_URL")
	if url == "" {
		t.Skip("MEMID_TEST_MONGO_URL not set")
	}

	ctx := context.Background()
	cfg := mongostore.Config{
		ConnectionURL:  url,
		ConnectTimeout: 5 * time.Second,
		MaxPoolSize:    4,
		RetryAttempts:  1,
		Database:       "memid_test",
		Collection:     "identifiers_" + uuid.NewString(),
	}
	client, err := mongostore.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database(cfg.Database).Collection(cfg.Collection).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	require.NoError(t, mongostore.Healthcheck(client)(ctx))

	store := mongostore.New(client, cfg)
	var _ registry.Registry = store

	ok, err := store.Reserve(ctx, "RedFox")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "RedFox")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Release(ctx, "RedFox"))
	ok, err = store.Reserve(ctx, "RedFox")
	require.NoError(t, err)
	assert.True(t, ok)
}
